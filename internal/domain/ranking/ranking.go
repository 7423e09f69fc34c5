// Package ranking orders scored candidates into a bounded shortlist.
package ranking

import (
	"sort"

	"github.com/okian/staffer/internal/domain/model"
)

// MaxShortlist caps the number of candidates returned for a project.
const MaxShortlist = 5

// Top returns up to limit candidates ordered by score desc. Ties keep their
// input order. A non-positive limit means MaxShortlist. The input slice is
// not modified and the result is never nil.
func Top(candidates []model.ScoredCandidate, limit int) []model.ScoredCandidate {
	if limit <= 0 || limit > MaxShortlist {
		limit = MaxShortlist
	}
	ranked := make([]model.ScoredCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
