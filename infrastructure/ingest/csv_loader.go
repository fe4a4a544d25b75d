package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ahrav/go-tally/internal/domain"
)

// Patterns for legacy CSV extraction: the first digit run in a row label
// is the district number, the first decimal number in a percentage token
// is the reported percentage.
var (
	districtNumberPattern = regexp.MustCompile(`\d+`)
	percentPattern        = regexp.MustCompile(`\d+(\.\d+)?`)
)

// CSVConfig controls how legacy CSV result tables are interpreted.
// The defaults match the archive exports; tests can substitute synthetic
// labels. Configuration is validated at construction.
type CSVConfig struct {
	// KeyHeader is the header label of the district column. Every other
	// column is treated as a subject-number column.
	KeyHeader string `yaml:"key_header" validate:"required"`

	// AbroadLabel is the sentinel row label identifying the overseas
	// district; such rows normalize to district number "0".
	AbroadLabel string `yaml:"abroad_label" validate:"required"`
}

// DefaultCSVConfig returns the configuration matching the archive CSV
// exports: Georgian key header and abroad sentinel.
func DefaultCSVConfig() CSVConfig {
	return CSVConfig{
		KeyHeader:   "ოლქი - სუბიექტი",
		AbroadLabel: "საზღვარგარეთი",
	}
}

// CSVLoader normalizes legacy CSV result tables. Each row is one
// district; the first cell holds a label the district number is extracted
// from, and every other cell holds combined "count\n(percent%)" text that
// is split into the two figures. Subject names are not present in this
// format and stay empty.
type CSVLoader struct {
	config CSVConfig
}

// NewCSVLoader creates a CSV dataset loader with the given configuration.
func NewCSVLoader(config CSVConfig) (*CSVLoader, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &CSVLoader{config: config}, nil
}

// Load reads and normalizes the legacy CSV file at path. Malformed cells
// propagate as errors; values are never guessed.
func (l *CSVLoader) Load(ctx context.Context, path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read header: %w", err)
	}

	keyIdx := -1
	for i, name := range header {
		if strings.TrimSpace(name) == l.config.KeyHeader {
			keyIdx = i
			break
		}
	}
	if keyIdx < 0 {
		return domain.Dataset{}, fmt.Errorf("%w: %q", ErrMissingKeyHeader, l.config.KeyHeader)
	}

	var ds domain.Dataset
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return domain.Dataset{}, err
		}
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("line %d: %w", line, err)
		}

		district, err := l.parseRow(header, keyIdx, record)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("line %d: %w", line, err)
		}
		ds.Districts = append(ds.Districts, district)
	}
	return ds, nil
}

func (l *CSVLoader) parseRow(header []string, keyIdx int, record []string) (domain.District, error) {
	label := strings.TrimSpace(record[keyIdx])

	number := "0"
	if label != l.config.AbroadLabel {
		match := districtNumberPattern.FindString(label)
		if match == "" {
			return domain.District{}, fmt.Errorf("%w: %q", ErrNoDistrictNumber, label)
		}
		number = match
	}

	district := domain.District{Number: number, Name: label}
	for i, cell := range record {
		if i == keyIdx {
			continue
		}
		subject, err := parseResultCell(header[i], cell)
		if err != nil {
			return domain.District{}, err
		}
		district.Subjects = append(district.Subjects, subject)
	}
	return district, nil
}

// parseResultCell splits a combined "count\n(percent%)" cell into its
// vote count and percentage.
func parseResultCell(subjectNumber, cell string) (domain.Subject, error) {
	tokens := strings.SplitN(cell, "\n", 2)
	if len(tokens) != 2 {
		return domain.Subject{}, fmt.Errorf("%w: subject %s: %q", ErrMalformedCell, subjectNumber, cell)
	}

	votes, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
	if err != nil {
		return domain.Subject{}, fmt.Errorf("%w: subject %s: bad count %q", ErrMalformedCell, subjectNumber, tokens[0])
	}

	match := percentPattern.FindString(tokens[1])
	if match == "" {
		return domain.Subject{}, fmt.Errorf("%w: subject %s: bad percent %q", ErrMalformedCell, subjectNumber, tokens[1])
	}
	percent, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return domain.Subject{}, fmt.Errorf("%w: subject %s: bad percent %q", ErrMalformedCell, subjectNumber, tokens[1])
	}

	return domain.Subject{Number: strings.TrimSpace(subjectNumber), Votes: votes, Percent: percent}, nil
}
