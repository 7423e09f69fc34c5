// Package model contains domain models passed between layers.
package model

// RemoteLocation marks an employee who can work from anywhere.
const RemoteLocation = "Remote"

// MaxRating is the top of the performance rating scale.
const MaxRating = 5.0

// Employee is a candidate worker.
// Fields mirror the JSON shape served by /employees.
type Employee struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	CL                int            `json:"CL"`                // career level; lower is more senior
	Location          string         `json:"location"`          // city, or RemoteLocation
	AvailabilityHours int            `json:"availabilityHours"` // free hours per week
	LastRating        float64        `json:"lastRating"`        // most recent rating, 0..MaxRating
	Skills            map[string]int `json:"skills"`            // skill -> proficiency
}

// IsRemote reports whether the employee can work remotely.
func (e Employee) IsRemote() bool {
	return e.Location == RemoteLocation
}

// Project is a staffing request.
type Project struct {
	ID                string         `json:"projectId"`
	Role              string         `json:"role"`
	Description       string         `json:"description,omitempty"`
	RequiredCL        int            `json:"requiredCL"`
	RequiredHours     int            `json:"requiredHours"`
	RemoteAllowed     bool           `json:"remoteAllowed"`
	Location          string         `json:"location,omitempty"` // only meaningful when RemoteAllowed is false
	KnowledgeTransfer string         `json:"knowledgeTransfer,omitempty"`
	SkillsNeeded      map[string]int `json:"skillsNeeded"` // skill -> minimum proficiency
}

// Factor names a scoring dimension.
type Factor string

// Scoring factors in the order they are reported.
const (
	FactorCL           Factor = "CL"
	FactorSkills       Factor = "skills"
	FactorAvailability Factor = "availability"
	FactorPerformance  Factor = "performance"
)

// Factors lists every scoring factor.
var Factors = []Factor{FactorCL, FactorSkills, FactorAvailability, FactorPerformance}

// Breakdown holds the rounded per-factor sub-scores of a candidate.
type Breakdown struct {
	CL           int `json:"CL"`
	Skills       int `json:"skills"`
	Availability int `json:"availability"`
	Performance  int `json:"performance"`
}

// Get returns the sub-score for f, or 0 for an unknown factor.
func (b Breakdown) Get(f Factor) int {
	switch f {
	case FactorCL:
		return b.CL
	case FactorSkills:
		return b.Skills
	case FactorAvailability:
		return b.Availability
	case FactorPerformance:
		return b.Performance
	default:
		return 0
	}
}

// ScoredCandidate is an eligible employee with its total score and breakdown.
type ScoredCandidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CL        int       `json:"CL"`
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}
