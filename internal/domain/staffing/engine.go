// Package staffing runs the filter, score and rank pipeline that turns one
// project and a pool of employees into a shortlist.
//
// The engine is a pure function of its arguments. It keeps no state between
// calls and is safe to invoke concurrently for different projects.
package staffing

import (
	"github.com/okian/staffer/internal/domain/eligibility"
	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/ranking"
	"github.com/okian/staffer/internal/domain/scoring"
)

// Report describes a single engine run.
type Report struct {
	// Shortlist holds at most ranking.MaxShortlist candidates, best first.
	// It is empty, never nil, when nobody passes the filters.
	Shortlist []model.ScoredCandidate
	// Evaluated is the number of employees considered.
	Evaluated int
	// Eligible is the number of employees that passed every hard filter.
	Eligible int
	// Rejected counts filtered employees by the first rule they failed.
	Rejected map[eligibility.Reason]int
}

// Empty reports whether no candidate made the shortlist.
func (r Report) Empty() bool {
	return len(r.Shortlist) == 0
}

// Evaluate filters, scores and ranks employees for p.
func Evaluate(p model.Project, employees []model.Employee) Report {
	report := Report{
		Evaluated: len(employees),
		Rejected:  make(map[eligibility.Reason]int),
	}

	scored := make([]model.ScoredCandidate, 0, len(employees))
	for _, e := range employees {
		if reason := eligibility.Check(p, e); reason != eligibility.ReasonNone {
			report.Rejected[reason]++
			continue
		}
		scored = append(scored, scoring.Evaluate(p, e).Candidate(e))
	}

	report.Eligible = len(scored)
	report.Shortlist = ranking.Top(scored, ranking.MaxShortlist)
	return report
}

// Run returns the shortlist for p.
func Run(p model.Project, employees []model.Employee) []model.ScoredCandidate {
	return Evaluate(p, employees).Shortlist
}
