// Package recommend turns a shortlist into a deterministic staffing
// recommendation for presentation.
package recommend

import (
	"errors"
	"fmt"
	"sort"

	"github.com/okian/staffer/internal/domain/model"
)

// Default recommendation settings.
const (
	defaultHighConfidence    = 75
	defaultMediumConfidence  = 50
	defaultKnowledgeTransfer = "https://docs.example.com/knowledge-transfer"
)

// ErrEmptyShortlist is returned when there is nobody to recommend.
var ErrEmptyShortlist = errors.New("empty shortlist")

// Confidence grades how strongly the top candidate is recommended.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Recommendation selects one candidate from a shortlist.
type Recommendation struct {
	SelectedID           string     `json:"selectedId"`
	SelectedName         string     `json:"selectedName"`
	Reasoning            string     `json:"reasoning"`
	Confidence           Confidence `json:"confidence"`
	TopicsToBrushUp      []string   `json:"topicsToBrushUp"`
	KnowledgeTransferURL string     `json:"knowledgeTransferUrl"`
}

// Recommender builds recommendations.
type Recommender struct {
	high        int
	medium      int
	fallbackURL string
}

// Option applies a configuration option to the Recommender.
type Option func(*Recommender)

// WithConfidenceThresholds sets the minimum scores for high and medium confidence.
func WithConfidenceThresholds(high, medium int) Option {
	return func(r *Recommender) {
		if high > 0 && medium > 0 && high >= medium {
			r.high = high
			r.medium = medium
		}
	}
}

// WithKnowledgeTransferURL sets the URL used when a project has none.
func WithKnowledgeTransferURL(url string) Option {
	return func(r *Recommender) {
		if url != "" {
			r.fallbackURL = url
		}
	}
}

// New creates a Recommender.
func New(opts ...Option) *Recommender {
	r := &Recommender{
		high:        defaultHighConfidence,
		medium:      defaultMediumConfidence,
		fallbackURL: defaultKnowledgeTransfer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend picks the first candidate of shortlist, which must already be
// ranked. Demo mode explains the pick with the engine's own numbers.
func (r *Recommender) Recommend(p model.Project, shortlist []model.ScoredCandidate, demo bool) (Recommendation, error) {
	if len(shortlist) == 0 {
		return Recommendation{}, fmt.Errorf("recommend %s: %w", p.ID, ErrEmptyShortlist)
	}
	top := shortlist[0]

	var reasoning string
	if demo {
		reasoning = fmt.Sprintf(
			"Demo mode: Hard filters matched %d candidates. %s (CL %d) is ranked #1 with a score of %d. Skills match: %d/100, Availability: %d/100.",
			len(shortlist), top.Name, top.CL, top.Score, top.Breakdown.Skills, top.Breakdown.Availability,
		)
	} else {
		reasoning = fmt.Sprintf(
			"Based on the analysis of the project requirements and candidate profiles, %s (CL %d) is recommended due to their strong skills match and high performance rating.",
			top.Name, top.CL,
		)
	}

	url := p.KnowledgeTransfer
	if url == "" {
		url = r.fallbackURL
	}

	return Recommendation{
		SelectedID:           top.ID,
		SelectedName:         top.Name,
		Reasoning:            reasoning,
		Confidence:           r.Confidence(top.Score),
		TopicsToBrushUp:      Topics(p),
		KnowledgeTransferURL: url,
	}, nil
}

// Confidence grades a total score.
func (r *Recommender) Confidence(score int) Confidence {
	switch {
	case score >= r.high:
		return ConfidenceHigh
	case score >= r.medium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Topics lists "Advanced <skill>" for each skill the project needs, sorted
// by skill name.
func Topics(p model.Project) []string {
	skills := make([]string, 0, len(p.SkillsNeeded))
	for s := range p.SkillsNeeded {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	topics := make([]string, len(skills))
	for i, s := range skills {
		topics[i] = "Advanced " + s
	}
	return topics
}
