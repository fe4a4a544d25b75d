package application

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

// Construction errors for the engine.
var (
	// ErrNoConfigs indicates an engine was constructed without any
	// per-year configuration records.
	ErrNoConfigs = errors.New("no year configurations supplied")

	// ErrNilLoaderDispatch indicates an engine was constructed without a
	// loader dispatch function.
	ErrNilLoaderDispatch = errors.New("nil loader dispatch")

	// ErrNoInputs indicates Process was called with an empty input list.
	ErrNoInputs = errors.New("no year inputs to process")
)

// YearInput names one raw per-year result file to process.
type YearInput struct {
	// Year selects the configuration record to apply.
	Year int

	// Type is the election type to aggregate. Anything but proportional
	// fails before any file is read.
	Type domain.ElectionType

	// Path locates the raw dataset (JSON or legacy CSV).
	Path string
}

// LoaderFunc selects a dataset loader for an input path. The ingest
// package provides the production dispatch; tests inject in-memory
// loaders through this hook.
type LoaderFunc func(path string) ports.DatasetLoader

// Engine runs the per-year pipeline: load and normalize the raw dataset,
// partition districts into geographic buckets, aggregate per bucket,
// combine totals, and evaluate the electoral threshold. Years are
// independent and processed in parallel; nothing is shared or mutated
// across them.
type Engine struct {
	configs   map[int]YearConfig
	loaderFor LoaderFunc
	debug     ports.DebugSink
}

// EngineOption customizes engine construction.
type EngineOption func(*Engine)

// WithDebugSink enables debug mode: each year's normalized dataset is
// dumped to the sink and trace lines are emitted during processing.
func WithDebugSink(sink ports.DebugSink) EngineOption {
	return func(e *Engine) { e.debug = sink }
}

// NewEngine creates an engine over the given year configurations and
// loader dispatch.
func NewEngine(configs map[int]YearConfig, loaderFor LoaderFunc, opts ...EngineOption) (*Engine, error) {
	if len(configs) == 0 {
		return nil, ErrNoConfigs
	}
	if loaderFor == nil {
		return nil, ErrNilLoaderDispatch
	}

	e := &Engine{configs: configs, loaderFor: loaderFor}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Process aggregates every input year and returns the results in input
// order.
//
// All inputs are checked up front: an unknown year, an unsupported
// election type, or a missing threshold entry aborts before any file is
// read. Per-year processing then runs concurrently; the first failing
// year cancels the rest. There are no retries — every failure indicates
// malformed input, not a transient condition.
func (e *Engine) Process(ctx context.Context, inputs []YearInput) ([]domain.YearAggregate, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	// Fail fast on configuration problems before touching any file.
	thresholds := make([]float64, len(inputs))
	for i, in := range inputs {
		cfg, ok := e.configs[in.Year]
		if !ok {
			return nil, fmt.Errorf("no configuration for year %d", in.Year)
		}
		pct, err := cfg.ThresholdFor(in.Type)
		if err != nil {
			return nil, err
		}
		thresholds[i] = pct
	}

	results := make([]domain.YearAggregate, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		g.Go(func() error {
			agg, err := e.processYear(ctx, in, e.configs[in.Year], thresholds[i])
			if err != nil {
				return fmt.Errorf("year %d: %w", in.Year, err)
			}
			results[i] = agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) processYear(
	ctx context.Context,
	in YearInput,
	cfg YearConfig,
	thresholdPct float64,
) (domain.YearAggregate, error) {
	loader := e.loaderFor(in.Path)
	ds, err := loader.Load(ctx, in.Path)
	if err != nil {
		return domain.YearAggregate{}, fmt.Errorf("load %s: %w", in.Path, err)
	}

	if e.debug != nil {
		if err := e.debug.DumpDataset(in.Year, ds); err != nil {
			return domain.YearAggregate{}, fmt.Errorf("debug dump: %w", err)
		}
	}

	geo := cfg.Geography()
	parts := geo.Partition(ds.Districts)

	// Every bucket must satisfy the subject-set invariant before any
	// aggregation. The abroad bucket is skipped for years that define no
	// abroad district; its aggregate stays empty.
	for _, bucket := range domain.Buckets {
		if bucket == domain.BucketAbroad && geo.AbroadDistrict == "" {
			continue
		}
		if err := domain.ValidateDistricts(string(bucket), parts[bucket]); err != nil {
			return domain.YearAggregate{}, err
		}
	}

	buckets := make(map[domain.Bucket]domain.BucketAggregate, len(domain.Buckets))
	for _, bucket := range domain.Buckets {
		buckets[bucket] = domain.AggregateBucket(parts[bucket])
	}

	combined := domain.CombineTotals(buckets)
	threshold := domain.EvaluateThreshold(combined, thresholdPct)

	if e.debug != nil {
		e.debug.Tracef("year %d: %d capital, %d other, %d abroad districts",
			in.Year, len(parts[domain.BucketCapital]), len(parts[domain.BucketOther]), len(parts[domain.BucketAbroad]))
		e.debug.Tracef("year %d: total valid %d, min required %d, qualifying %v",
			in.Year, threshold.TotalValid, threshold.MinRequired, threshold.Qualifying)
	}

	return domain.YearAggregate{
		Year:             in.Year,
		Type:             in.Type,
		ThresholdPercent: thresholdPct,
		PartyNames:       domain.PartyNames(parts[domain.BucketAbroad]),
		Buckets:          buckets,
		CombinedTotals:   combined,
		Threshold:        threshold,
	}, nil
}
