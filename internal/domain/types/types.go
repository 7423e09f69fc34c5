// Package types contains result types shared by the service, the HTTP API
// and the CLI.
package types

import (
	"time"

	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/recommend"
	"github.com/okian/staffer/internal/domain/staffing"
)

// Shortlist is the outcome of staffing one project.
type Shortlist struct {
	Project        model.Project             `json:"project"`
	Candidates     []model.ScoredCandidate   `json:"shortlistedCandidates"`
	Recommendation *recommend.Recommendation `json:"recommendation,omitempty"` // nil when Candidates is empty
	Evaluated      int                       `json:"evaluated"`
	Eligible       int                       `json:"eligible"`
	Rejected       map[string]int            `json:"rejected"` // rejection reason -> count
	GeneratedAt    time.Time                 `json:"generatedAt"`
}

// NewShortlist assembles a Shortlist from an engine report.
func NewShortlist(p model.Project, r staffing.Report, rec *recommend.Recommendation, at time.Time) Shortlist {
	rejected := make(map[string]int, len(r.Rejected))
	for reason, n := range r.Rejected {
		rejected[string(reason)] = n
	}
	candidates := r.Shortlist
	if candidates == nil {
		candidates = []model.ScoredCandidate{}
	}
	return Shortlist{
		Project:        p,
		Candidates:     candidates,
		Recommendation: rec,
		Evaluated:      r.Evaluated,
		Eligible:       r.Eligible,
		Rejected:       rejected,
		GeneratedAt:    at.UTC(),
	}
}

// Empty reports whether nobody was shortlisted.
func (s Shortlist) Empty() bool {
	return len(s.Candidates) == 0
}

// Top returns the best candidate, if any.
func (s Shortlist) Top() (model.ScoredCandidate, bool) {
	if s.Empty() {
		return model.ScoredCandidate{}, false
	}
	return s.Candidates[0], true
}
