package rarity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// New creates an Analyzer from the given configuration.
func New(cfg Config) (Analyzer, error) {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyStatistical
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 1
	}
	if cfg.Precision == 0 {
		cfg.Precision = DefaultPrecision
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	strategy, err := StrategyByName(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	return &analyzer{
		config:   cfg,
		strategy: strategy,
		metrics:  NewMetricsRecorder(cfg.EnableMetrics),
	}, nil
}

type analyzer struct {
	config   Config
	strategy Strategy
	metrics  *MetricsRecorder
}

// Analyze runs the full pipeline: catalog build, concurrent scoring, ranking,
// report assembly. The first error aborts the whole run; no partial catalog,
// score set, or rank assignment is ever exposed.
func (a *analyzer) Analyze(ctx context.Context, items []Item, opts ...AnalyzeOption) (*Report, error) {
	options := &analyzeOptions{
		strategy:      a.strategy,
		maxConcurrent: a.config.MaxConcurrent,
	}
	for _, opt := range opts {
		opt(options)
	}

	runID := uuid.NewString()
	start := time.Now()

	slog.Info("Analyzing collection",
		"run_id", runID,
		"items", len(items),
		"strategy", options.strategy.Name(),
		"workers", options.maxConcurrent)

	report, err := a.run(ctx, runID, items, options)

	duration := time.Since(start)
	a.metrics.RecordRunDuration(duration.Seconds(), options.strategy.Name())

	if err != nil {
		a.metrics.RecordRun("error", options.strategy.Name())
		a.metrics.RecordError(classifyError(err))
		slog.Error("Collection analysis failed",
			"run_id", runID,
			"error", err,
			"duration", duration)
		return nil, err
	}

	a.metrics.RecordRun("success", options.strategy.Name())
	a.metrics.RecordCollectionSize(report.TotalItems)
	a.metrics.RecordItemsScored(len(report.Items))
	for _, item := range report.Items {
		a.metrics.RecordScore(item.Total)
	}

	slog.Info("Collection analysis completed",
		"run_id", runID,
		"items", report.TotalItems,
		"categories", len(report.Categories),
		"duration", duration)

	return report, nil
}

func (a *analyzer) run(ctx context.Context, runID string, items []Item, options *analyzeOptions) (*Report, error) {
	catalog, err := BuildCatalog(items)
	if err != nil {
		return nil, err
	}
	a.metrics.RecordCatalogCategories(len(catalog.Categories()))

	scored, err := a.scoreAll(ctx, catalog, items, options)
	if err != nil {
		return nil, err
	}

	ranked := Rank(scored)

	return &Report{
		RunID:      runID,
		Strategy:   options.strategy.Name(),
		TotalItems: catalog.TotalItems(),
		Precision:  a.config.Precision,
		Items:      ranked,
		Categories: buildSummaries(catalog),
	}, nil
}

// scoreAll scores every item against the shared immutable catalog using a
// pool of workers. Workers only read the catalog, so no locking is needed;
// results are collected by input position so worker scheduling cannot affect
// the outcome. The first scoring error cancels the remaining work.
func (a *analyzer) scoreAll(ctx context.Context, catalog *Catalog, items []Item, options *analyzeOptions) ([]ItemRarity, error) {
	workers := options.maxConcurrent
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	results := make([]ItemRarity, len(items))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		a.metrics.RecordScoringWorkers(1)
		go func() {
			defer wg.Done()
			defer a.metrics.RecordScoringWorkers(-1)
			for i := range jobs {
				scored, err := Score(catalog, items[i], options.strategy)
				if err != nil {
					fail(err)
					return
				}
				results[i] = scored

				slog.Debug("Item scored",
					"id", scored.ItemID,
					"total", scored.Total)
			}
		}()
	}

feed:
	for i := range items {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
