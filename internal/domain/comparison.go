package domain

// DefaultTrackedSubject is the subject number the comparison singles out
// by default. It is data, not logic; callers may track any subject.
const DefaultTrackedSubject = "41"

// Figures holds one cell of the comparison: a vote count, the matching
// bucket-average percentage, and the delta against the immediately
// preceding year. The first year of a sequence carries no delta.
type Figures struct {
	// Count is the summed vote count within the bucket.
	Count int

	// Percent is the bucket-average percentage (or, for the "others"
	// row, the sum of bucket-average percentages).
	Percent float64

	// HasDelta reports whether delta fields are meaningful; it is false
	// for the first year in the compared sequence.
	HasDelta bool

	// CountDelta is Count minus the preceding year's Count.
	CountDelta int

	// PercentDelta is Percent minus the preceding year's Percent, in
	// percentage points.
	PercentDelta float64
}

// ComparisonRow is one year's figures for one bucket: the tracked subject
// against the sum of all other qualifying subjects.
type ComparisonRow struct {
	// Year is the election year this row describes.
	Year int

	// Type is the election type of the year's dataset.
	Type ElectionType

	// ThresholdPercent is the electoral threshold applied that year.
	ThresholdPercent float64

	// Tracked holds the tracked subject's figures.
	Tracked Figures

	// Others holds the summed figures of every other qualifying subject.
	Others Figures
}

// ParticipationRow is one year's total-valid-votes figure with its delta
// against the preceding year.
type ParticipationRow struct {
	Year       int
	Type       ElectionType
	TotalValid int
	HasDelta   bool
	Delta      int
}

// Comparison is the complete year-over-year comparison: per-bucket rows in
// chronological order plus the participation totals. It is plain data for
// a renderer to consume; no formatting happens here.
type Comparison struct {
	// TrackedSubject is the subject number being tracked.
	TrackedSubject string

	// TrackedName is the tracked subject's display name, taken from the
	// latest year that reports one. Empty when no year carries names.
	TrackedName string

	// Rows maps each bucket to its chronological comparison rows.
	Rows map[Bucket][]ComparisonRow

	// Participation holds the chronological total-valid figures.
	Participation []ParticipationRow
}

// Compare computes the year-over-year comparison for the tracked subject
// across the given aggregates, which must be in chronological order.
//
// Compare fails with a LookupError when the tracked subject did not pass
// the threshold in any year of the sequence; a subject that did not
// qualify must surface as an error, not as a zero row.
func Compare(years []YearAggregate, tracked string) (*Comparison, error) {
	if len(years) == 0 {
		return nil, ErrNoAggregates
	}

	comp := &Comparison{
		TrackedSubject: tracked,
		Rows:           make(map[Bucket][]ComparisonRow, len(Buckets)),
	}

	for _, bucket := range Buckets {
		rows := make([]ComparisonRow, 0, len(years))
		for i, ya := range years {
			trackedFig, othersFig, err := ya.BucketFigures(bucket, tracked)
			if err != nil {
				return nil, err
			}
			if i > 0 {
				prev := rows[i-1]
				trackedFig.HasDelta = true
				trackedFig.CountDelta = trackedFig.Count - prev.Tracked.Count
				trackedFig.PercentDelta = trackedFig.Percent - prev.Tracked.Percent
				othersFig.HasDelta = true
				othersFig.CountDelta = othersFig.Count - prev.Others.Count
				othersFig.PercentDelta = othersFig.Percent - prev.Others.Percent
			}
			rows = append(rows, ComparisonRow{
				Year:             ya.Year,
				Type:             ya.Type,
				ThresholdPercent: ya.ThresholdPercent,
				Tracked:          trackedFig,
				Others:           othersFig,
			})
		}
		comp.Rows[bucket] = rows
	}

	for i, ya := range years {
		row := ParticipationRow{
			Year:       ya.Year,
			Type:       ya.Type,
			TotalValid: ya.TotalValid(),
		}
		if i > 0 {
			row.HasDelta = true
			row.Delta = row.TotalValid - comp.Participation[i-1].TotalValid
		}
		comp.Participation = append(comp.Participation, row)
	}

	for i := len(years) - 1; i >= 0; i-- {
		if name, ok := years[i].PartyNames[tracked]; ok && name != "" {
			comp.TrackedName = name
			break
		}
	}

	return comp, nil
}

// BucketFigures returns the tracked subject's figures and the summed
// figures of all other qualifying subjects for one bucket.
//
// It fails with a LookupError when the tracked subject is not in the
// year's qualifying set or is absent from the bucket's aggregates.
func (ya YearAggregate) BucketFigures(bucket Bucket, tracked string) (Figures, Figures, error) {
	agg, ok := ya.Buckets[bucket]
	if !ok {
		return Figures{}, Figures{}, &LookupError{Year: ya.Year, Bucket: bucket, Subject: tracked}
	}

	if !ya.Threshold.Qualifies(tracked) {
		return Figures{}, Figures{}, &LookupError{Year: ya.Year, Bucket: bucket, Subject: tracked}
	}
	count, haveCount := agg.VoteCounts[tracked]
	pct, havePct := agg.PercentAvgs[tracked]
	if !haveCount || !havePct {
		return Figures{}, Figures{}, &LookupError{Year: ya.Year, Bucket: bucket, Subject: tracked}
	}

	trackedFig := Figures{Count: count, Percent: pct}

	var othersFig Figures
	for _, number := range ya.Threshold.Qualifying {
		if number == tracked {
			continue
		}
		othersFig.Count += agg.VoteCounts[number]
		othersFig.Percent += agg.PercentAvgs[number]
	}

	return trackedFig, othersFig, nil
}
