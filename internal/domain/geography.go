package domain

// Bucket is one of the three geographic groupings used for
// sub-aggregation. Every district of a year belongs to exactly one bucket.
type Bucket string

// The geographic buckets, in report order.
const (
	// BucketCapital holds the capital-city districts listed in the
	// per-year capital table.
	BucketCapital Bucket = "capital"

	// BucketOther holds every district that is neither the abroad
	// district nor listed in the capital table.
	BucketOther Bucket = "other"

	// BucketAbroad holds the single reserved overseas-voters district,
	// when the year defines one.
	BucketAbroad Bucket = "abroad"
)

// Buckets lists all geographic buckets in report order.
var Buckets = []Bucket{BucketCapital, BucketOther, BucketAbroad}

// Geography carries the per-year classification tables. District
// boundaries are redrawn between elections, so both tables change by year
// and must be supplied per dataset rather than hardcoded.
type Geography struct {
	// AbroadDistrict is the reserved identifier of the overseas-voters
	// district. Empty means the year has no distinct abroad district and
	// nothing classifies as BucketAbroad.
	AbroadDistrict string

	// CapitalDistricts maps capital district identifiers to their names.
	// Identifier format follows the year's convention (zero-padded or
	// not); cardinality ranges from 8 to 22 entries across known years.
	CapitalDistricts map[string]string
}

// Classify returns the bucket a district identifier belongs to.
// The abroad identifier wins over the capital table; everything matching
// neither falls into BucketOther.
func (g Geography) Classify(districtNumber string) Bucket {
	if g.AbroadDistrict != "" && districtNumber == g.AbroadDistrict {
		return BucketAbroad
	}
	if _, ok := g.CapitalDistricts[districtNumber]; ok {
		return BucketCapital
	}
	return BucketOther
}

// Partition splits districts into the three buckets, preserving input
// order within each bucket. The result always contains all three keys so
// downstream aggregation can detect empty buckets explicitly.
func (g Geography) Partition(districts []District) map[Bucket][]District {
	parts := map[Bucket][]District{
		BucketAbroad:  nil,
		BucketCapital: nil,
		BucketOther:   nil,
	}
	for _, d := range districts {
		bucket := g.Classify(d.Number)
		parts[bucket] = append(parts[bucket], d)
	}
	return parts
}
