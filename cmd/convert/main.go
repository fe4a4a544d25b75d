// Command convert exports the per-year JSON result files as CSV tables in
// the normalized legacy layout: one row per district, one column per
// subject number.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ahrav/go-tally/infrastructure/ingest"
	"github.com/ahrav/go-tally/infrastructure/report"
	"github.com/ahrav/go-tally/internal/application"
)

func main() {
	dataDir := flag.String("data", ".", "Directory containing the JSON result files")
	flag.Parse()

	configs, err := application.DefaultYearConfigs()
	if err != nil {
		log.Fatalf("Failed to load year configuration: %v", err)
	}

	conversions := []struct {
		year    int
		in, out string
	}{
		{2020, "2020.prop.json", "2020.prop.csv"},
		{2024, "2024.prop.json", "2024.prop.csv"},
	}

	loader := ingest.NewJSONLoader()
	ctx := context.Background()
	for _, c := range conversions {
		ds, err := loader.Load(ctx, filepath.Join(*dataDir, c.in))
		if err != nil {
			log.Fatalf("Failed to load %s: %v", c.in, err)
		}

		opts := report.DefaultExportOptions()
		// 2024 source names are unusable; label rows from the config table.
		opts.DistrictNames = configs[c.year].DistrictNames

		outPath := filepath.Join(*dataDir, c.out)
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", c.out, err)
		}
		if err := report.WriteDataset(f, ds, opts); err != nil {
			f.Close()
			log.Fatalf("Failed to export %s: %v", c.out, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close %s: %v", c.out, err)
		}
		fmt.Printf("Wrote %s\n", outPath)
	}
}
