package domain

// BucketAggregate holds the per-subject figures for one geographic bucket:
// vote counts summed across the bucket's districts and reported
// percentages averaged across them.
//
// The percentage average is an arithmetic mean with equal weight per
// district regardless of turnout. It intentionally matches the source
// reporting and can diverge from a count-derived percentage; see the
// product note on unweighted averaging before "fixing" this.
type BucketAggregate struct {
	// VoteCounts maps subject number to the summed vote count.
	VoteCounts map[string]int

	// PercentAvgs maps subject number to the unweighted mean of the
	// reported per-district percentages.
	PercentAvgs map[string]float64

	// Districts is the number of districts aggregated into this bucket.
	Districts int
}

// AggregateBucket computes the per-subject sums and percentage means for
// one bucket's districts. It is a pure function; inputs are not modified.
// Callers are expected to have run ValidateDistricts first so every
// district carries the same subject set.
func AggregateBucket(districts []District) BucketAggregate {
	counts := make(map[string]int)
	pctSums := make(map[string]float64)
	pctN := make(map[string]int)

	for _, d := range districts {
		for _, s := range d.Subjects {
			counts[s.Number] += s.Votes
			pctSums[s.Number] += s.Percent
			pctN[s.Number]++
		}
	}

	avgs := make(map[string]float64, len(pctSums))
	for number, sum := range pctSums {
		avgs[number] = sum / float64(pctN[number])
	}

	return BucketAggregate{
		VoteCounts:  counts,
		PercentAvgs: avgs,
		Districts:   len(districts),
	}
}

// CombineTotals sums each subject's per-bucket vote counts into a combined
// cross-region total. Every subject keeps the identity
// combined == abroad + capital + other.
func CombineTotals(buckets map[Bucket]BucketAggregate) map[string]int {
	combined := make(map[string]int)
	for _, agg := range buckets {
		for number, votes := range agg.VoteCounts {
			combined[number] += votes
		}
	}
	return combined
}

// YearAggregate is the complete aggregation result for one election year:
// per-bucket figures, combined totals, and the threshold outcome.
type YearAggregate struct {
	// Year is the election year.
	Year int

	// Type is the election type aggregated (always Proportional).
	Type ElectionType

	// ThresholdPercent is the electoral threshold applied to this year.
	ThresholdPercent float64

	// PartyNames maps subject numbers to local-language display names,
	// harvested from the abroad district when names are available.
	PartyNames map[string]string

	// Buckets holds the per-bucket aggregates keyed by geographic bucket.
	Buckets map[Bucket]BucketAggregate

	// CombinedTotals maps subject number to its cross-bucket vote total.
	CombinedTotals map[string]int

	// Threshold is the qualification outcome derived from CombinedTotals.
	Threshold ThresholdResult
}

// TotalValid returns the sum of all subjects' combined totals, the figure
// the threshold cutoff is computed against.
func (ya YearAggregate) TotalValid() int {
	total := 0
	for _, votes := range ya.CombinedTotals {
		total += votes
	}
	return total
}
