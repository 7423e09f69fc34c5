package scoring

import "math"

// Band maps an inclusive integer range to a score.
type Band struct {
	Min   int
	Max   int
	Score float64
}

// BandTable is an ordered list of bands evaluated top-down. The first band
// containing the value wins; Fallback applies when none does.
type BandTable struct {
	Bands    []Band
	Fallback float64
}

// Lookup returns the score for v.
func (t BandTable) Lookup(v int) float64 {
	for _, b := range t.Bands {
		if v >= b.Min && v <= b.Max {
			return b.Score
		}
	}
	return t.Fallback
}

// Threshold maps a lower bound (inclusive) to a score.
type Threshold struct {
	Min   float64
	Score float64
}

// ThresholdTable is an ordered list of thresholds evaluated top-down, highest
// bound first. Fallback applies when v is below every bound.
type ThresholdTable struct {
	Steps    []Threshold
	Fallback float64
}

// Lookup returns the score for v.
func (t ThresholdTable) Lookup(v float64) float64 {
	for _, s := range t.Steps {
		if v >= s.Min {
			return s.Score
		}
	}
	return t.Fallback
}

// seniorityTable is keyed by requiredCL - employeeCL. Positive values mean the
// employee is more senior than required.
var seniorityTable = BandTable{
	Bands: []Band{
		{Min: 0, Max: 0, Score: 100},
		{Min: 1, Max: 1, Score: 85},
		{Min: 2, Max: 2, Score: 65},
		{Min: 3, Max: math.MaxInt, Score: 30},
		{Min: -1, Max: -1, Score: 75},
	},
	Fallback: 50,
}

// availabilityTable is keyed by availableHours / requiredHours.
var availabilityTable = ThresholdTable{
	Steps: []Threshold{
		{Min: 1.2, Score: 100},
		{Min: 1.0, Score: 85},
		{Min: 0.9, Score: 60},
	},
	Fallback: 30,
}

// SeniorityTable returns a copy of the seniority policy.
func SeniorityTable() BandTable {
	return BandTable{
		Bands:    append([]Band(nil), seniorityTable.Bands...),
		Fallback: seniorityTable.Fallback,
	}
}

// AvailabilityTable returns a copy of the availability policy.
func AvailabilityTable() ThresholdTable {
	return ThresholdTable{
		Steps:    append([]Threshold(nil), availabilityTable.Steps...),
		Fallback: availabilityTable.Fallback,
	}
}
