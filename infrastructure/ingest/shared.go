// Package ingest provides the dataset loaders that normalize raw per-year
// election result files (JSON or legacy CSV) into the canonical domain
// shape consumed by the aggregation pipeline.
package ingest

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-tally/internal/ports"
)

// Common errors returned by dataset loaders. Malformed input is fatal for
// the year being processed; loaders never guess at unparseable values.
var (
	// ErrMissingKeyHeader is returned when a legacy CSV file lacks the
	// district key column in its header row.
	ErrMissingKeyHeader = errors.New("missing district key header")

	// ErrMalformedCell is returned when a CSV result cell does not match
	// the expected "count\n(percent%)" shape.
	ErrMalformedCell = errors.New("malformed result cell")

	// ErrNoDistrictNumber is returned when no numeric district identifier
	// can be extracted from a CSV row label.
	ErrNoDistrictNumber = errors.New("no district number in row label")

	// ErrMissingVoteField is returned when a JSON subject carries neither
	// of the two vote-count field spellings.
	ErrMissingVoteField = errors.New("subject missing votes/vote field")
)

// Package-level validator instance for loader configuration validation.
var validate = validator.New()

// ForPath selects the loader for an input file by extension: JSON and CSV
// get their format loaders, anything else gets the placeholder loader.
// The placeholder is a documented limitation, not an error — unsupported
// extensions normalize to an empty dataset and the pipeline surfaces the
// resulting validation failure instead.
func ForPath(path string) ports.DatasetLoader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return NewJSONLoader()
	case ".csv":
		return &CSVLoader{config: DefaultCSVConfig()}
	default:
		return PlaceholderLoader{}
	}
}
