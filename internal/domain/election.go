// Package domain contains the core data model and pure computations for
// election-result aggregation: normalized per-district records, geographic
// partitioning, per-bucket vote aggregation, electoral-threshold math, and
// year-over-year comparison figures.
// The package has no external dependencies and no side effects; all
// functions are deterministic transforms over in-memory structures.
package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ElectionType identifies the race kind a dataset describes.
type ElectionType string

// Supported election types. Only proportional races are implemented;
// majoritarian aggregation is declared for completeness and rejected
// before any dataset is read.
const (
	Proportional ElectionType = "proportional"
	Majoritarian ElectionType = "majoritarian"
)

// Subject is a party or electoral list appearing on a ballot.
// Numbers are year-specific and not necessarily contiguous.
type Subject struct {
	// Number is the official subject identifier as a string, preserving
	// any leading zeros used by the source year.
	Number string `json:"number"`

	// Name is the display name as reported. Bilingual names are
	// pipe-delimited with the local-language segment first.
	Name string `json:"name"`

	// Votes is the reported vote count for this subject in one district.
	Votes int `json:"votes"`

	// Percent is the reported vote percentage (0-100). It is carried as
	// reported and never recomputed from counts.
	Percent float64 `json:"percent"`
}

// District is a geographic constituency reporting results for every
// subject on the ballot.
type District struct {
	// Number is the district identifier. Newer years zero-pad it;
	// the reserved identifier "0" marks the abroad district.
	Number string `json:"number"`

	// Name is the district display name, possibly bilingual or a
	// majoritarian-district label.
	Name string `json:"name"`

	// Subjects holds the per-subject results in reported order.
	Subjects []Subject `json:"subjects"`
}

// SubjectNumbers returns the district's subject identifiers sorted
// numerically ("2" before "10", regardless of zero padding).
func (d District) SubjectNumbers() []string {
	numbers := make([]string, 0, len(d.Subjects))
	for _, s := range d.Subjects {
		numbers = append(numbers, s.Number)
	}
	SortNumeric(numbers)
	return numbers
}

// DatasetInfo carries the turnout metadata reported alongside a dataset.
// Legacy CSV sources do not report it; the zero value is valid.
type DatasetInfo struct {
	Canceled       int     `json:"canceled"`
	Counted        int     `json:"counted"`
	CountedPercent float64 `json:"countedPercent"`
	Foreign        int     `json:"foreign"`
	Total          int     `json:"total"`
}

// Dataset is one year's normalized election results: every district with
// per-subject counts and percentages in the canonical shape, regardless of
// whether the source was JSON or legacy CSV.
type Dataset struct {
	Info      DatasetInfo `json:"info"`
	Districts []District  `json:"items"`
}

// ValidateDistricts checks the subject-set invariant for a group of
// districts: every district must expose the identical set of subject
// identifiers as the first district in the group. The scope names the
// group in error messages (typically the bucket being validated).
//
// An empty group is rejected; aggregation over zero districts would
// silently produce empty results.
func ValidateDistricts(scope string, districts []District) error {
	if len(districts) == 0 {
		verr := NewValidationError(scope)
		verr.AddError("empty district list")
		return verr
	}

	reference := districts[0].SubjectNumbers()
	for _, d := range districts[1:] {
		numbers := d.SubjectNumbers()
		if !equalStrings(reference, numbers) {
			verr := NewValidationError(scope)
			verr.AddError("district " + d.Number + " (" + d.Name + ") subject set " +
				strings.Join(numbers, ",") + " differs from reference " +
				strings.Join(reference, ","))
			return verr
		}
	}
	return nil
}

// LocalName returns the local-language segment of a possibly bilingual,
// pipe-delimited display name. Names without a pipe are returned whole.
func LocalName(name string) string {
	if i := strings.IndexByte(name, '|'); i >= 0 {
		return name[:i]
	}
	return name
}

// PartyNames harvests a subject-number to display-name directory from a
// group of districts, keeping the first non-empty name seen per subject.
// Bilingual names are reduced to their local segment.
func PartyNames(districts []District) map[string]string {
	names := make(map[string]string)
	for _, d := range districts {
		for _, s := range d.Subjects {
			if s.Name == "" {
				continue
			}
			if _, ok := names[s.Number]; !ok {
				names[s.Number] = LocalName(s.Name)
			}
		}
	}
	return names
}

// SortNumeric sorts identifier strings by their integer value, falling
// back to lexical order for non-numeric entries. Zero-padded identifiers
// compare equal to their unpadded forms ("05" sorts as 5).
func SortNumeric(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
