package rarity

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Run metrics
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rarity_runs_total",
			Help: "Total number of collection analysis runs",
		},
		[]string{"status", "strategy"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rarity_run_duration_seconds",
			Help:    "Duration of full analysis runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	// Collection metrics
	collectionSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rarity_collection_size",
			Help:    "Number of items per analyzed collection",
			Buckets: prometheus.ExponentialBuckets(1, 10, 6),
		},
	)

	catalogCategories = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rarity_catalog_categories",
			Help:    "Number of trait categories per catalog",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	itemsScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rarity_items_scored_total",
			Help: "Total number of items scored",
		},
	)

	// Error metrics
	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rarity_errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"error_type"},
	)

	// Score distribution
	scoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rarity_total_score_distribution",
			Help:    "Distribution of total rarity scores",
			Buckets: prometheus.ExponentialBuckets(0.1, 4, 10),
		},
	)

	// Concurrency metrics
	scoringWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rarity_scoring_workers",
			Help: "Number of scoring workers currently running",
		},
	)
)

// MetricsRecorder provides methods to record metrics
type MetricsRecorder struct {
	enabled bool
}

// NewMetricsRecorder creates a new metrics recorder
func NewMetricsRecorder(enabled bool) *MetricsRecorder {
	return &MetricsRecorder{enabled: enabled}
}

// RecordRun records a completed or failed analysis run
func (m *MetricsRecorder) RecordRun(status, strategy string) {
	if !m.enabled {
		return
	}
	runsTotal.WithLabelValues(status, strategy).Inc()
}

// RecordRunDuration records the wall-clock duration of a run
func (m *MetricsRecorder) RecordRunDuration(seconds float64, strategy string) {
	if !m.enabled {
		return
	}
	runDuration.WithLabelValues(strategy).Observe(seconds)
}

// RecordCollectionSize records the item count of an analyzed collection
func (m *MetricsRecorder) RecordCollectionSize(size int) {
	if !m.enabled {
		return
	}
	collectionSize.Observe(float64(size))
}

// RecordCatalogCategories records how many categories a catalog holds
func (m *MetricsRecorder) RecordCatalogCategories(count int) {
	if !m.enabled {
		return
	}
	catalogCategories.Observe(float64(count))
}

// RecordItemsScored records the number of items scored
func (m *MetricsRecorder) RecordItemsScored(count int) {
	if !m.enabled {
		return
	}
	itemsScored.Add(float64(count))
}

// RecordError records an error by classified type
func (m *MetricsRecorder) RecordError(errorType string) {
	if !m.enabled {
		return
	}
	errorsTotal.WithLabelValues(errorType).Inc()
}

// RecordScore records one item's total rarity
func (m *MetricsRecorder) RecordScore(total float64) {
	if !m.enabled {
		return
	}
	scoreDistribution.Observe(total)
}

// RecordScoringWorkers updates the running worker gauge
func (m *MetricsRecorder) RecordScoringWorkers(delta float64) {
	if !m.enabled {
		return
	}
	scoringWorkers.Add(delta)
}

// GetMetricsHandler returns an HTTP handler for Prometheus metrics
func GetMetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RegisterCustomMetrics allows registration of custom metrics
func RegisterCustomMetrics(collector prometheus.Collector) error {
	return prometheus.Register(collector)
}

// classifyError returns error type for metrics
func classifyError(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrEmptyCollection):
		return "empty_collection"
	case errors.Is(err, ErrUnknownStrategy):
		return "unknown_strategy"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}

	var dataErr *DataError
	if errors.As(err, &dataErr) {
		return "data_error"
	}

	var degenerateErr *DegenerateCategoryError
	if errors.As(err, &degenerateErr) {
		return "degenerate_category"
	}

	return "unknown"
}
