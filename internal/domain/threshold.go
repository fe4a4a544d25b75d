package domain

import "math"

// ThresholdResult is the outcome of applying an electoral threshold to
// one year's combined per-subject totals.
type ThresholdResult struct {
	// Percent is the threshold percentage that was applied.
	Percent float64

	// TotalValid is the sum of all subjects' combined totals.
	TotalValid int

	// MinRequired is the minimum combined vote count a subject needs to
	// qualify: ceiling(Percent * TotalValid / 100).
	MinRequired int

	// Qualifying lists the subject numbers whose combined total meets or
	// exceeds MinRequired, sorted numerically.
	Qualifying []string
}

// EvaluateThreshold computes the qualification cutoff and the qualifying
// subject set from combined per-subject totals.
//
// The cutoff rounds fractional requirements up: a 5% threshold over
// 1,000,001 total votes requires 50,001, not 50,000. A subject qualifies
// iff its combined total >= MinRequired.
func EvaluateThreshold(combined map[string]int, percent float64) ThresholdResult {
	total := 0
	for _, votes := range combined {
		total += votes
	}

	minRequired := int(math.Ceil(percent * float64(total) / 100))

	qualifying := make([]string, 0, len(combined))
	for number, votes := range combined {
		if votes >= minRequired {
			qualifying = append(qualifying, number)
		}
	}
	SortNumeric(qualifying)

	return ThresholdResult{
		Percent:     percent,
		TotalValid:  total,
		MinRequired: minRequired,
		Qualifying:  qualifying,
	}
}

// Qualifies reports whether the subject number passed the threshold.
func (tr ThresholdResult) Qualifies(number string) bool {
	for _, q := range tr.Qualifying {
		if q == number {
			return true
		}
	}
	return false
}
