package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tally/infrastructure/ingest"
	"github.com/ahrav/go-tally/internal/domain"
)

func exportDataset() domain.Dataset {
	return domain.Dataset{Districts: []domain.District{
		{Number: "0", Name: "საზღვარგარეთი", Subjects: []domain.Subject{
			{Number: "41", Name: "ოცნება|Dream", Votes: 12628, Percent: 51.11},
			{Number: "05", Name: "ერთობა|Unity", Votes: 4000, Percent: 16.19},
		}},
		{Number: "1", Name: "მთაწმინდა|Mtatsminda", Subjects: []domain.Subject{
			{Number: "41", Votes: 9000, Percent: 36.4},
			{Number: "05", Votes: 1000, Percent: 4},
		}},
		{Number: "77", Name: "Maj. #77 ოლქი|Maj. #77 district", Subjects: []domain.Subject{
			{Number: "41", Votes: 500, Percent: 50},
			{Number: "05", Votes: 500, Percent: 50},
		}},
	}}
}

func TestWriteDataset(t *testing.T) {
	t.Run("header and row labels", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, WriteDataset(&buf, exportDataset(), DefaultExportOptions()))
		out := buf.String()

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Equal(t, "ოლქი - სუბიექტი,05,41", lines[0],
			"subject columns sorted numerically after the key header")

		assert.Contains(t, out, "საზღვარგარეთი,\"4000")
		assert.Contains(t, out, "1. მთაწმინდა,")
		assert.Contains(t, out, "77. მაჟ.ოლქი,", "majoritarian labels collapse")
	})

	t.Run("cells carry count and percent", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, WriteDataset(&buf, exportDataset(), DefaultExportOptions()))

		assert.Contains(t, buf.String(), "\"12628\n(51.11%)\"")
		assert.Contains(t, buf.String(), "\"1000\n(4%)\"")
	})

	t.Run("district name overrides", func(t *testing.T) {
		opts := DefaultExportOptions()
		opts.DistrictNames = map[string]string{"1": "ვაკე"}

		var buf strings.Builder
		require.NoError(t, WriteDataset(&buf, exportDataset(), opts))
		assert.Contains(t, buf.String(), "1. ვაკე,")
		assert.NotContains(t, buf.String(), "მთაწმინდა")
	})

	t.Run("empty dataset rejected", func(t *testing.T) {
		var buf strings.Builder
		err := WriteDataset(&buf, domain.Dataset{}, DefaultExportOptions())
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("missing subject aborts the export", func(t *testing.T) {
		ds := exportDataset()
		ds.Districts[1].Subjects = ds.Districts[1].Subjects[:1]

		var buf strings.Builder
		err := WriteDataset(&buf, ds, DefaultExportOptions())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "district 1 missing subject")
	})
}

// Exports must re-ingest cleanly: loading a written file through the
// legacy CSV loader recovers the same numbers.
func TestWriteDatasetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteDataset(f, exportDataset(), DefaultExportOptions()))
	require.NoError(t, f.Close())

	loader, err := ingest.NewCSVLoader(ingest.DefaultCSVConfig())
	require.NoError(t, err)
	ds, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, ds.Districts, 3)
	assert.Equal(t, "0", ds.Districts[0].Number, "abroad label maps back to district zero")
	assert.Equal(t, "1", ds.Districts[1].Number)
	assert.Equal(t, "77", ds.Districts[2].Number)

	bySubject := make(map[string]domain.Subject)
	for _, s := range ds.Districts[0].Subjects {
		bySubject[s.Number] = s
	}
	assert.Equal(t, 12628, bySubject["41"].Votes)
	assert.InDelta(t, 51.11, bySubject["41"].Percent, 1e-9)
	assert.Equal(t, 4000, bySubject["05"].Votes)
}
