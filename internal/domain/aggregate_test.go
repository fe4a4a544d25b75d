package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateBucket(t *testing.T) {
	t.Run("sums counts and averages percentages", func(t *testing.T) {
		districts := []District{
			district("1", subject("41", 1000, 40.0), subject("5", 500, 20.0)),
			district("2", subject("41", 2000, 45.0), subject("5", 700, 25.0)),
		}

		agg := AggregateBucket(districts)

		assert.Equal(t, 3000, agg.VoteCounts["41"])
		assert.Equal(t, 1200, agg.VoteCounts["5"])
		assert.InDelta(t, 42.5, agg.PercentAvgs["41"], 1e-9)
		assert.InDelta(t, 22.5, agg.PercentAvgs["5"], 1e-9)
		assert.Equal(t, 2, agg.Districts)
	})

	t.Run("mean is unweighted by turnout", func(t *testing.T) {
		// A tiny district's percentage counts as much as a huge one's.
		districts := []District{
			district("1", subject("41", 1_000_000, 80.0)),
			district("2", subject("41", 10, 20.0)),
		}

		agg := AggregateBucket(districts)
		assert.InDelta(t, 50.0, agg.PercentAvgs["41"], 1e-9)
	})

	t.Run("single district passes through", func(t *testing.T) {
		agg := AggregateBucket([]District{district("0", subject("41", 77, 33.3))})

		assert.Equal(t, 77, agg.VoteCounts["41"])
		assert.InDelta(t, 33.3, agg.PercentAvgs["41"], 1e-9)
		assert.Equal(t, 1, agg.Districts)
	})

	t.Run("empty bucket yields empty aggregate", func(t *testing.T) {
		agg := AggregateBucket(nil)

		assert.Empty(t, agg.VoteCounts)
		assert.Empty(t, agg.PercentAvgs)
		assert.Zero(t, agg.Districts)
	})
}

func TestCombineTotals(t *testing.T) {
	buckets := map[Bucket]BucketAggregate{
		BucketAbroad:  {VoteCounts: map[string]int{"41": 100, "5": 50}},
		BucketCapital: {VoteCounts: map[string]int{"41": 2000, "5": 900}},
		BucketOther:   {VoteCounts: map[string]int{"41": 3900, "5": 2050}},
	}

	combined := CombineTotals(buckets)

	t.Run("combined equals sum of per-bucket sums", func(t *testing.T) {
		assert.Equal(t, 6000, combined["41"])
		assert.Equal(t, 3000, combined["5"])
	})

	t.Run("total valid equals sum of combined totals", func(t *testing.T) {
		ya := YearAggregate{CombinedTotals: combined}
		assert.Equal(t, 9000, ya.TotalValid())
	})
}

func TestCombineTotalsEmptyAbroad(t *testing.T) {
	// Years without a distinct abroad district combine two buckets only;
	// the identity combined == abroad + capital + other still holds with
	// abroad contributing zero.
	buckets := map[Bucket]BucketAggregate{
		BucketAbroad:  {},
		BucketCapital: {VoteCounts: map[string]int{"41": 10}},
		BucketOther:   {VoteCounts: map[string]int{"41": 20}},
	}

	combined := CombineTotals(buckets)
	require.Equal(t, 30, combined["41"])
}
