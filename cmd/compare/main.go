// Command compare aggregates the per-year election result files, applies
// each year's electoral threshold, and prints the year-over-year
// comparison tables for the tracked subject.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/ahrav/go-tally/infrastructure/ingest"
	"github.com/ahrav/go-tally/infrastructure/report"
	"github.com/ahrav/go-tally/internal/application"
	"github.com/ahrav/go-tally/internal/domain"
)

func main() {
	var (
		dataDir = flag.String("data", ".", "Directory containing the per-year result files")
		debug   = flag.Bool("debug", false, "Dump normalized datasets and emit trace output")
	)
	flag.Parse()

	// The compared set is fixed: the proportional races with archived
	// data, in chronological order (order matters for deltas).
	inputs := []application.YearInput{
		{Year: 2012, Type: domain.Proportional, Path: filepath.Join(*dataDir, "2012.proporciuli.csv")},
		{Year: 2016, Type: domain.Proportional, Path: filepath.Join(*dataDir, "2016.proporciuli.csv")},
		{Year: 2020, Type: domain.Proportional, Path: filepath.Join(*dataDir, "2020.prop.json")},
		{Year: 2024, Type: domain.Proportional, Path: filepath.Join(*dataDir, "2024.prop.json")},
	}

	configs, err := application.DefaultYearConfigs()
	if err != nil {
		log.Fatalf("Failed to load year configuration: %v", err)
	}

	var opts []application.EngineOption
	if *debug {
		opts = append(opts, application.WithDebugSink(report.NewFileDebugSink(*dataDir, os.Stderr)))
	}

	engine, err := application.NewEngine(configs, ingest.ForPath, opts...)
	if err != nil {
		log.Fatalf("Failed to construct engine: %v", err)
	}

	aggregates, err := engine.Process(context.Background(), inputs)
	if err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}

	comparison, err := domain.Compare(aggregates, domain.DefaultTrackedSubject)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}

	renderer := report.NewRenderer(os.Stdout, report.DefaultRendererConfig())
	if err := renderer.Render(comparison); err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}
}
