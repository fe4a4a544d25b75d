package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want any
	}{
		{"json extension", "2020.prop.json", &JSONLoader{}},
		{"csv extension", "2012.proporciuli.csv", &CSVLoader{}},
		{"uppercase extension", "RESULTS.JSON", &JSONLoader{}},
		{"unknown extension", "2008.prop.xlsx", PlaceholderLoader{}},
		{"no extension", "results", PlaceholderLoader{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.IsType(t, tc.want, ForPath(tc.path))
		})
	}
}

func TestPlaceholderLoader(t *testing.T) {
	ds, err := PlaceholderLoader{}.Load(context.Background(), "whatever.xlsx")
	require.NoError(t, err)
	assert.Empty(t, ds.Districts, "unsupported formats normalize to an empty dataset")
}
