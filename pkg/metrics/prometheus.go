// Package metrics provides Prometheus metrics for the hoopsight
// prediction service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Business metrics
	predictionsLogged  prometheus.Counter
	comparisonsTotal   prometheus.Counter
	missingPlayerHits  prometheus.Counter
	reconcileRuns      prometheus.Counter
	reconcileMatches   prometheus.Counter
	reconcileCorrect   prometheus.Counter
	accuracyPercent    prometheus.Gauge
	checkedPredictions prometheus.Gauge

	// Store metrics
	storeReadLatency  prometheus.Histogram
	storeWriteLatency prometheus.Histogram
	storeCorruptions  prometheus.Counter

	// External source metrics
	resultFetchErrors prometheus.Counter
	resultsFetched    prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hoopsight",
		subsystem:        "predictor",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.predictionsLogged = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_logged_total",
		Help:      "Total number of predictions logged to the history store",
	})

	m.comparisonsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lineup_comparisons_total",
		Help:      "Total number of lineup comparisons computed",
	})

	m.missingPlayerHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "missing_player_errors_total",
		Help:      "Total number of comparisons rejected for unknown player names",
	})

	m.reconcileRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reconcile_runs_total",
		Help:      "Total number of reconciliation runs",
	})

	m.reconcileMatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reconcile_matches_total",
		Help:      "Total number of predictions matched against real results",
	})

	m.reconcileCorrect = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reconcile_correct_total",
		Help:      "Total number of matched predictions that were correct",
	})

	m.accuracyPercent = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "accuracy_percent",
		Help:      "Overall prediction accuracy from the last aggregator run",
	})

	m.checkedPredictions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "checked_predictions",
		Help:      "Number of reconciled predictions counted by the aggregator",
	})

	m.storeReadLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_read_latency_milliseconds",
		Help:      "Histogram of prediction store read latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeWriteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_write_latency_milliseconds",
		Help:      "Histogram of prediction store write latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.storeCorruptions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_corruptions_total",
		Help:      "Times a persisted store file was unreadable and replaced with empty data",
	})

	m.resultFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "result_fetch_errors_total",
		Help:      "Failed fetches from the external score source",
	})

	m.resultsFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "results_fetched_total",
		Help:      "Completed game results retrieved from the external score source",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers against the global manager.

// RecordPredictionLogged increments the logged-prediction counter.
func RecordPredictionLogged() {
	globalManager.predictionsLogged.Inc()
}

// RecordComparison increments the lineup comparison counter.
func RecordComparison() {
	globalManager.comparisonsTotal.Inc()
}

// RecordMissingPlayer counts a comparison rejected for unknown names.
func RecordMissingPlayer() {
	globalManager.missingPlayerHits.Inc()
}

// RecordReconcileRun counts a reconciliation invocation.
func RecordReconcileRun() {
	globalManager.reconcileRuns.Inc()
}

// RecordReconcileMatch counts matched predictions and how many of them
// were correct.
func RecordReconcileMatch(correct bool) {
	globalManager.reconcileMatches.Inc()
	if correct {
		globalManager.reconcileCorrect.Inc()
	}
}

// SetAccuracy publishes the aggregator's latest report.
func SetAccuracy(percent float64, checked int) {
	globalManager.accuracyPercent.Set(percent)
	globalManager.checkedPredictions.Set(float64(checked))
}

// RecordStoreReadLatency observes a store read in milliseconds.
func RecordStoreReadLatency(latencyMs float64) {
	globalManager.storeReadLatency.Observe(latencyMs)
}

// RecordStoreWriteLatency observes a store write in milliseconds.
func RecordStoreWriteLatency(latencyMs float64) {
	globalManager.storeWriteLatency.Observe(latencyMs)
}

// RecordStoreCorruption counts an unreadable store file.
func RecordStoreCorruption() {
	globalManager.storeCorruptions.Inc()
}

// RecordResultFetchError counts a failed external score fetch.
func RecordResultFetchError() {
	globalManager.resultFetchErrors.Inc()
}

// RecordResultsFetched counts retrieved completed games.
func RecordResultsFetched(n int) {
	globalManager.resultsFetched.Add(float64(n))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// SetSystemMemoryUsage publishes current heap allocation.
func SetSystemMemoryUsage(bytes float64) {
	globalManager.systemMemoryUsage.Set(bytes)
}

// SetSystemGoroutineCount publishes the goroutine count.
func SetSystemGoroutineCount(count float64) {
	globalManager.systemGoroutineCount.Set(count)
}

// GetRegistry exposes the custom registry for the metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
