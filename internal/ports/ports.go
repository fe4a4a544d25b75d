// Package ports defines the interfaces that form the contract between the
// domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the pipeline
// testable with in-memory implementations.
package ports

import (
	"context"

	"github.com/ahrav/go-tally/internal/domain"
)

// DatasetLoader produces a normalized dataset from one raw per-year input
// file. Implementations exist per source format (JSON, legacy CSV) plus a
// documented placeholder for unsupported extensions.
// Loaders must be pure readers: no mutation of shared state, no retries.
// Malformed input is a fatal error for that year, not a transient
// condition.
type DatasetLoader interface {
	// Load reads and normalizes the file at path into the canonical
	// dataset shape. The context allows cancellation of slow reads when
	// years are processed in parallel.
	Load(ctx context.Context, path string) (domain.Dataset, error)
}

// DebugSink receives normalized datasets and trace lines when the engine
// is constructed with debug mode enabled. Implementations decide where
// dumps land (typically per-year files under the data directory).
type DebugSink interface {
	// DumpDataset persists one year's normalized dataset for inspection.
	DumpDataset(year int, ds domain.Dataset) error

	// Tracef emits one formatted trace line.
	Tracef(format string, args ...any)
}
