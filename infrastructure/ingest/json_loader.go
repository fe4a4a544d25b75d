package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ahrav/go-tally/internal/domain"
)

// JSONLoader normalizes per-year JSON result files. The schema is stable
// across years except for the per-subject vote-count field, which some
// years spell "votes" and others "vote"; both are accepted and normalized
// to one.
type JSONLoader struct{}

// NewJSONLoader creates a JSON dataset loader.
func NewJSONLoader() *JSONLoader { return &JSONLoader{} }

// jsonSubject mirrors the raw per-subject record. Both vote-count field
// spellings are captured as pointers so absence is distinguishable from
// zero.
type jsonSubject struct {
	Number  string  `json:"number"`
	Name    string  `json:"name"`
	Votes   *int    `json:"votes"`
	Vote    *int    `json:"vote"`
	Percent float64 `json:"percent"`
}

type jsonDistrict struct {
	Number   string        `json:"number"`
	Name     string        `json:"name"`
	Subjects []jsonSubject `json:"subjects"`
}

type jsonDataset struct {
	Info  domain.DatasetInfo `json:"info"`
	Items []jsonDistrict     `json:"items"`
}

// Load reads and normalizes the JSON result file at path.
func (l *JSONLoader) Load(ctx context.Context, path string) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var raw jsonDataset
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	ds := domain.Dataset{Info: raw.Info, Districts: make([]domain.District, 0, len(raw.Items))}
	for _, item := range raw.Items {
		district := domain.District{
			Number:   item.Number,
			Name:     item.Name,
			Subjects: make([]domain.Subject, 0, len(item.Subjects)),
		}
		for _, s := range item.Subjects {
			votes, err := reconcileVotes(s)
			if err != nil {
				return domain.Dataset{}, fmt.Errorf("district %s subject %s: %w", item.Number, s.Number, err)
			}
			district.Subjects = append(district.Subjects, domain.Subject{
				Number:  s.Number,
				Name:    s.Name,
				Votes:   votes,
				Percent: s.Percent,
			})
		}
		ds.Districts = append(ds.Districts, district)
	}
	return ds, nil
}

// reconcileVotes normalizes the two vote-count field spellings, preferring
// the newer "votes" when both are present.
func reconcileVotes(s jsonSubject) (int, error) {
	switch {
	case s.Votes != nil:
		return *s.Votes, nil
	case s.Vote != nil:
		return *s.Vote, nil
	default:
		return 0, ErrMissingVoteField
	}
}
