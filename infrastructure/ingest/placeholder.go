package ingest

import (
	"context"

	"github.com/ahrav/go-tally/internal/domain"
)

// PlaceholderLoader is the documented no-op for unsupported file
// extensions. It yields an empty dataset rather than an error so the
// behavior is explicit and assertable; the pipeline's empty-district
// validation then reports the year as unusable instead of this loader
// guessing at a format.
type PlaceholderLoader struct{}

// Load returns an empty dataset without touching the file.
func (PlaceholderLoader) Load(ctx context.Context, path string) (domain.Dataset, error) {
	return domain.Dataset{}, ctx.Err()
}
