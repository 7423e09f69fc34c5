// Package scoring computes how well an eligible employee fits a project.
//
// Four sub-scores are computed independently on a 0-100 scale and combined
// with fixed weights. Sub-scores stay unrounded until reporting: the total is
// the weighted sum of the raw values, rounded once, and each breakdown field
// is rounded on its own. A breakdown therefore may not reproduce the total
// exactly.
package scoring

import (
	"math"

	"github.com/okian/staffer/internal/domain/model"
)

// Factor weights. They sum to weightTotal.
const (
	WeightCL           = 25
	WeightSkills       = 45
	WeightAvailability = 15
	WeightPerformance  = 15

	weightTotal = 100
)

// Scoring constants.
const (
	maxScoreValue   = 100
	skillPointsMet  = 10 // proficiency at or above the requirement
	skillPointsNear = 6  // exactly one level short
)

// Weight returns the weight of f, or 0 for an unknown factor.
func Weight(f model.Factor) int {
	switch f {
	case model.FactorCL:
		return WeightCL
	case model.FactorSkills:
		return WeightSkills
	case model.FactorAvailability:
		return WeightAvailability
	case model.FactorPerformance:
		return WeightPerformance
	default:
		return 0
	}
}

// Result contains the unrounded sub-scores and total for one employee.
type Result struct {
	CL           float64
	Skills       float64
	Availability float64
	Performance  float64
	Total        float64
}

// Score returns the rounded total in [0, 100].
func (r Result) Score() int {
	return roundScore(r.Total)
}

// Breakdown returns the rounded sub-scores.
func (r Result) Breakdown() model.Breakdown {
	return model.Breakdown{
		CL:           roundScore(r.CL),
		Skills:       roundScore(r.Skills),
		Availability: roundScore(r.Availability),
		Performance:  roundScore(r.Performance),
	}
}

// Candidate converts the result into the output record for e.
func (r Result) Candidate(e model.Employee) model.ScoredCandidate {
	return model.ScoredCandidate{
		ID:        e.ID,
		Name:      e.Name,
		CL:        e.CL,
		Score:     r.Score(),
		Breakdown: r.Breakdown(),
	}
}

// Evaluate scores e against p. It does not apply the eligibility filters.
func Evaluate(p model.Project, e model.Employee) Result {
	r := Result{
		CL:           Seniority(p.RequiredCL, e.CL),
		Skills:       Skills(e.Skills, p.SkillsNeeded),
		Availability: Availability(e.AvailabilityHours, p.RequiredHours),
		Performance:  Performance(e.LastRating),
	}
	r.Total = Combine(r.CL, r.Skills, r.Availability, r.Performance)
	return r
}

// Combine returns the weighted sum of the four sub-scores.
func Combine(cl, skills, availability, performance float64) float64 {
	return cl*WeightCL/weightTotal +
		skills*WeightSkills/weightTotal +
		availability*WeightAvailability/weightTotal +
		performance*WeightPerformance/weightTotal
}

// Seniority scores the gap between the required and actual career level.
func Seniority(requiredCL, employeeCL int) float64 {
	return seniorityTable.Lookup(requiredCL - employeeCL)
}

// Skills awards points per required skill and scales the sum to 0-100.
// Skills the employee lacks earn nothing. No required skills scores 100.
func Skills(employee, required map[string]int) float64 {
	if len(required) == 0 {
		return maxScoreValue
	}
	total := 0
	for skill, want := range required {
		have, ok := employee[skill]
		if !ok {
			continue
		}
		switch {
		case have >= want:
			total += skillPointsMet
		case have == want-1:
			total += skillPointsNear
		}
	}
	possible := skillPointsMet * len(required)
	return float64(total) / float64(possible) * maxScoreValue
}

// Availability scores the ratio of free hours to required hours. A project
// requiring no hours is always fully satisfied.
func Availability(availableHours, requiredHours int) float64 {
	if requiredHours <= 0 {
		return maxScoreValue
	}
	ratio := float64(availableHours) / float64(requiredHours)
	return availabilityTable.Lookup(ratio)
}

// Performance scales the rating linearly against model.MaxRating.
func Performance(rating float64) float64 {
	if math.IsNaN(rating) {
		return 0
	}
	return clamp(rating / model.MaxRating * maxScoreValue)
}

func clamp(x float64) float64 {
	return math.Max(0, math.Min(maxScoreValue, x))
}

func roundScore(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return int(math.Round(clamp(x)))
}
