package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ahrav/go-tally/internal/domain"
)

// ErrEmptyDataset is returned when an export is requested for a dataset
// with no districts; the subject column set is taken from the first
// district and cannot be derived otherwise.
var ErrEmptyDataset = errors.New("empty dataset")

// ExportOptions controls the normalized-CSV export layout.
type ExportOptions struct {
	// KeyHeader labels the district column.
	KeyHeader string

	// MajoritarianLabel replaces district names that carry a majoritarian
	// marker ("Maj"), collapsing the verbose bilingual label.
	MajoritarianLabel string

	// DistrictNames optionally overrides row labels by district number,
	// for years whose source names are unusable.
	DistrictNames map[string]string
}

// DefaultExportOptions returns the archive-compatible export layout.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		KeyHeader:         "ოლქი - სუბიექტი",
		MajoritarianLabel: "მაჟ.ოლქი",
	}
}

// WriteDataset exports a normalized dataset as a CSV table mirroring the
// legacy format: a header row with the key label followed by subject
// numbers sorted numerically, then one row per district whose result
// cells hold "count\n(percent%)" text. Exports re-ingest cleanly through
// the legacy CSV loader.
func WriteDataset(w io.Writer, ds domain.Dataset, opts ExportOptions) error {
	if len(ds.Districts) == 0 {
		return ErrEmptyDataset
	}

	numbers := ds.Districts[0].SubjectNumbers()

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{opts.KeyHeader}, numbers...)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, district := range ds.Districts {
		row := []string{rowLabel(district, opts)}

		cells := make(map[string]string, len(district.Subjects))
		for _, s := range district.Subjects {
			cells[s.Number] = fmt.Sprintf("%d\n(%s%%)", s.Votes, formatFloat(s.Percent))
		}
		for _, number := range numbers {
			cell, ok := cells[number]
			if !ok {
				return fmt.Errorf("district %s missing subject %s", district.Number, number)
			}
			row = append(row, cell)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write district %s: %w", district.Number, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// rowLabel builds the district column text: majoritarian labels collapse,
// bilingual names reduce to the local segment, optional per-number names
// override, and every district but the abroad row ("0") is prefixed with
// its number.
func rowLabel(district domain.District, opts ExportOptions) string {
	name := district.Name
	switch {
	case strings.Contains(name, "Maj"):
		name = opts.MajoritarianLabel
	default:
		name = domain.LocalName(name)
	}
	if override, ok := opts.DistrictNames[district.Number]; ok {
		name = override
	}

	if district.Number == "0" {
		return name
	}
	return district.Number + ". " + name
}
