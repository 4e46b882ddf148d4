// Package metrics provides Prometheus metrics for the pulpito roster service.
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

	// Reconciliation metrics
	submissions         prometheus.Counter
	submissionConflicts prometheus.Counter
	recordsAdded        prometheus.Counter
	recordsUpdated      prometheus.Counter
	backupMerges        prometheus.Counter
	backupUnchanged     prometheus.Counter
	duplicateSubmits    prometheus.Counter
	removals            prometheus.Counter

	// Collaborator metrics
	persistErrors prometheus.Counter
	exports       *prometheus.CounterVec

	// State gauges
	rosterSize prometheus.Gauge
	dedupeSize prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pulpito",
		subsystem:        "roster",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.submissions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_total",
		Help:      "Total number of submissions reconciled",
	})

	m.submissionConflicts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submission_conflicts_total",
		Help:      "Total number of submissions rejected because the date did not advance",
	})

	m.recordsAdded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_added_total",
		Help:      "Total number of speaker records inserted by reconciliation",
	})

	m.recordsUpdated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_updated_total",
		Help:      "Total number of speaker records whose date was advanced",
	})

	m.backupMerges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "backup_merges_total",
		Help:      "Total number of confirmed backup merges applied",
	})

	m.backupUnchanged = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "backup_unchanged_total",
		Help:      "Total number of backup loads short-circuited as multiset-equivalent",
	})

	m.duplicateSubmits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_submissions_total",
		Help:      "Total number of retried submissions dropped by idempotency tracking",
	})

	m.removals = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "removals_total",
		Help:      "Total number of speaker records removed",
	})

	m.persistErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "persist_errors_total",
		Help:      "Total number of failed write-throughs to the roster slot",
	})

	m.exports = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "exports_total",
			Help:      "Total number of roster exports by format",
		},
		[]string{"format"},
	)

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "size",
		Help:      "Current number of speakers in the roster",
	})

	m.dedupeSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dedupe_size",
		Help:      "Current number of submission ids tracked for idempotency",
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
}

// RecordSubmission increments the submissions counter.
func RecordSubmission() {
	globalManager.submissions.Inc()
}

// RecordSubmissionConflicts adds to the conflict counter.
func RecordSubmissionConflicts(n int) {
	globalManager.submissionConflicts.Add(float64(n))
}

// RecordRecordsAdded adds to the inserted-records counter.
func RecordRecordsAdded(n int) {
	globalManager.recordsAdded.Add(float64(n))
}

// RecordRecordsUpdated adds to the advanced-records counter.
func RecordRecordsUpdated(n int) {
	globalManager.recordsUpdated.Add(float64(n))
}

// RecordBackupMerge increments the confirmed-merge counter.
func RecordBackupMerge() {
	globalManager.backupMerges.Inc()
}

// RecordBackupUnchanged increments the equivalent-backup counter.
func RecordBackupUnchanged() {
	globalManager.backupUnchanged.Inc()
}

// RecordDuplicateSubmission increments the duplicate submissions counter.
func RecordDuplicateSubmission() {
	globalManager.duplicateSubmits.Inc()
}

// RecordRemoval increments the removals counter.
func RecordRemoval() {
	globalManager.removals.Inc()
}

// RecordPersistError increments the write-through failure counter.
func RecordPersistError() {
	globalManager.persistErrors.Inc()
}

// RecordExport increments the export counter for a format.
func RecordExport(format string) {
	globalManager.exports.WithLabelValues(format).Inc()
}

// UpdateRosterSize sets the current roster size.
func UpdateRosterSize(size int) {
	globalManager.rosterSize.Set(float64(size))
}

// UpdateDedupeSize sets the current dedupe tracker size.
func UpdateDedupeSize(size int) {
	globalManager.dedupeSize.Set(float64(size))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
