// Package eligibility implements the hard filters an employee must pass
// before being scored against a project.
package eligibility

import "github.com/okian/staffer/internal/domain/model"

// maxJuniorGap is how many levels more junior than required an employee may be.
const maxJuniorGap = 1

// Reason identifies which hard filter rejected an employee.
type Reason string

// Rejection reasons, checked in this order.
const (
	ReasonNone         Reason = ""
	ReasonSeniorityGap Reason = "seniority_gap"
	ReasonAvailability Reason = "availability_shortfall"
	ReasonLocation     Reason = "location_mismatch"
)

// Reasons lists every rejection reason.
var Reasons = []Reason{ReasonSeniorityGap, ReasonAvailability, ReasonLocation}

// Check returns the first hard filter e fails for p, or ReasonNone.
func Check(p model.Project, e model.Employee) Reason {
	// Larger CL numbers are more junior.
	if e.CL > p.RequiredCL+maxJuniorGap {
		return ReasonSeniorityGap
	}
	if e.AvailabilityHours < p.RequiredHours {
		return ReasonAvailability
	}
	// An empty project location never matches a city, so a non-remote project
	// without a location only admits remote employees.
	if !p.RemoteAllowed && !e.IsRemote() && e.Location != p.Location {
		return ReasonLocation
	}
	return ReasonNone
}

// Admit reports whether e passes every hard filter for p.
func Admit(p model.Project, e model.Employee) bool {
	return Check(p, e) == ReasonNone
}
