package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Snapshot ingest metrics
	SnapshotsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odds_comparison_snapshots_processed_total",
			Help: "Total number of odds snapshots processed",
		},
		[]string{"status"}, // success, error
	)

	SnapshotProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "odds_comparison_snapshot_processing_duration_seconds",
			Help:    "Duration of snapshot processing",
			Buckets: prometheus.DefBuckets,
		},
	)

	MatrixRowsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "odds_comparison_matrix_rows_built_total",
			Help: "Total number of comparison matrix rows built",
		},
	)

	// Classification metrics
	EvaluationsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odds_comparison_evaluations_classified_total",
			Help: "Total number of evaluation results seen per bucket",
		},
		[]string{"bucket"}, // arbitrage, near_miss, other
	)

	// Cache metrics
	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "odds_comparison_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "status"}, // set_snapshot/get_matrix/get_evals, success/error
	)
)

// RecordSnapshot records snapshot ingest metrics
func RecordSnapshot(duration time.Duration, rows int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	SnapshotsProcessed.WithLabelValues(status).Inc()
	SnapshotProcessingDuration.Observe(duration.Seconds())
	MatrixRowsBuilt.Add(float64(rows))
}

// RecordClassification records per-bucket evaluation counts from a summary
func RecordClassification(arbitrage, nearMiss, other int) {
	EvaluationsClassified.WithLabelValues("arbitrage").Add(float64(arbitrage))
	EvaluationsClassified.WithLabelValues("near_miss").Add(float64(nearMiss))
	EvaluationsClassified.WithLabelValues("other").Add(float64(other))
}

// RecordCacheOperation records cache operation metrics
func RecordCacheOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	CacheOperations.WithLabelValues(operation, status).Inc()
}
