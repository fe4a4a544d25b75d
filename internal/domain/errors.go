package domain

import (
	"errors"
	"fmt"
)

// Common domain errors surfaced during aggregation and comparison.
var (
	// ErrUnsupportedElectionType indicates a request for an election type
	// with no implemented aggregation (anything but proportional).
	ErrUnsupportedElectionType = errors.New("unsupported election type")

	// ErrNoThresholdEntry indicates the per-year configuration carries no
	// electoral threshold for the requested election type.
	ErrNoThresholdEntry = errors.New("no electoral threshold entry")

	// ErrNoAggregates indicates a comparison was requested over an empty
	// sequence of year aggregates.
	ErrNoAggregates = errors.New("no year aggregates to compare")
)

// ValidationError reports one or more invariant violations found while
// validating a dataset before aggregation. Scope names the group of
// districts that failed (typically a geographic bucket).
type ValidationError struct {
	// Scope is the name of the district group that failed validation.
	Scope string

	// Errors contains the individual violation messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Scope, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Scope, e.Errors)
}

// AddError appends a violation message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors reports whether any violations were recorded.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates an empty ValidationError for the given scope.
func NewValidationError(scope string) *ValidationError {
	return &ValidationError{Scope: scope, Errors: make([]string, 0)}
}

// LookupError reports a request for a subject that was not part of the
// qualifying set for a given year and bucket. It deliberately
// distinguishes "did not qualify" from "zero votes"; callers must not
// substitute zero for a missing subject.
type LookupError struct {
	// Year is the election year the lookup targeted.
	Year int

	// Bucket is the geographic bucket the lookup targeted.
	Bucket Bucket

	// Subject is the requested subject identifier.
	Subject string
}

// Error implements the error interface for LookupError.
func (e *LookupError) Error() string {
	return fmt.Sprintf("subject %s not in qualifying set for %d %s", e.Subject, e.Year, e.Bucket)
}
