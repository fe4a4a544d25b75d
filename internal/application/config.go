// Package application wires the per-year configuration records to the
// domain pipeline: it loads and validates the year tables and orchestrates
// load -> partition -> aggregate -> threshold for each requested year.
package application

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-tally/internal/domain"
)

// defaultYearsYAML carries the production per-year tables. Electoral
// thresholds, the abroad-district identifier, and the capital-district
// table all change between elections because boundaries are redrawn, so
// they are data keyed by year rather than logic.
//
//go:embed years.yaml
var defaultYearsYAML []byte

// YearConfig is the explicit per-year configuration record consumed by
// the engine. It replaces scattered per-year conditionals: the normalizer
// and partitioner both parameterize on it, and tests can supply synthetic
// records without touching production tables.
type YearConfig struct {
	// Year is the election year this record describes.
	Year int `yaml:"year" validate:"required,min=1995"`

	// Thresholds maps election type to the electoral threshold
	// percentage. Every year must define a proportional entry; the
	// majoritarian entry may be absent (2024 has none), in which case
	// requests for that type fail fast.
	Thresholds map[domain.ElectionType]float64 `yaml:"thresholds" validate:"required,proportional,dive,gt=0,lte=100"`

	// AbroadDistrict is the reserved overseas-voters district identifier
	// for this year. Empty means the year has no distinct abroad district.
	AbroadDistrict string `yaml:"abroad_district"`

	// CapitalDistricts maps capital district identifiers to names, in the
	// identifier format the year's data uses (zero-padded or not).
	CapitalDistricts map[string]string `yaml:"capital_districts" validate:"required,min=1,dive,required"`

	// DistrictNames optionally maps every district identifier to a
	// display name; the CSV export utility uses it to label rows for
	// years whose source names are unusable (2024).
	DistrictNames map[string]string `yaml:"district_names" validate:"omitempty,dive,required"`
}

// Geography returns the domain partitioning tables for this year.
func (yc YearConfig) Geography() domain.Geography {
	return domain.Geography{
		AbroadDistrict:   yc.AbroadDistrict,
		CapitalDistricts: yc.CapitalDistricts,
	}
}

// ThresholdFor returns the electoral threshold percentage for the given
// election type. Only proportional aggregation is implemented; any other
// type fails with ErrUnsupportedElectionType so callers abort before any
// data is read. A supported type without a table entry fails with
// ErrNoThresholdEntry.
func (yc YearConfig) ThresholdFor(t domain.ElectionType) (float64, error) {
	if t != domain.Proportional {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedElectionType, t)
	}
	pct, ok := yc.Thresholds[t]
	if !ok {
		return 0, fmt.Errorf("%w: year %d type %s", domain.ErrNoThresholdEntry, yc.Year, t)
	}
	return pct, nil
}

// yearsFile is the on-disk shape of the year-table document.
type yearsFile struct {
	Years []YearConfig `yaml:"years" validate:"required,min=1,dive"`
}

// DefaultYearConfigs parses and validates the embedded production year
// tables, keyed by year.
func DefaultYearConfigs() (map[int]YearConfig, error) {
	return ParseYearConfigs(defaultYearsYAML)
}

// ParseYearConfigs parses a YAML year-table document with strict field
// checking, validates every record, and returns the records keyed by
// year. Duplicate years are rejected.
func ParseYearConfigs(data []byte) (map[int]YearConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file yearsFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse year configuration: %w", err)
	}

	v, err := newConfigValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("year configuration validation failed: %w", err)
	}

	configs := make(map[int]YearConfig, len(file.Years))
	for _, yc := range file.Years {
		if _, ok := configs[yc.Year]; ok {
			return nil, fmt.Errorf("duplicate configuration for year %d", yc.Year)
		}
		configs[yc.Year] = yc
	}
	return configs, nil
}

// newConfigValidator builds a validator with the custom rules the year
// tables need beyond struct tags.
func newConfigValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("proportional", validateProportionalEntry); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return v, nil
}

// validateProportionalEntry enforces that a threshold table carries a
// proportional entry; a year without one could never be processed.
func validateProportionalEntry(fl validator.FieldLevel) bool {
	thresholds, ok := fl.Field().Interface().(map[domain.ElectionType]float64)
	if !ok {
		return false
	}
	_, ok = thresholds[domain.Proportional]
	return ok
}
