// Package metrics provides Prometheus metrics for the staffing service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// shortlistBuckets covers every possible shortlist length.
var shortlistBuckets = []float64{0, 1, 2, 3, 4, 5} //nolint:gochecknoglobals // fixed bucket layout

// Manager manages all Prometheus metrics for the staffing service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Staffing Metrics - What the engine decides
	staffingRequests    *prometheus.CounterVec
	candidatesEvaluated prometheus.Counter
	candidatesAdmitted  prometheus.Counter
	candidatesRejected  *prometheus.CounterVec
	shortlistSize       prometheus.Histogram
	engineLatency       prometheus.Histogram
	recommendations     *prometheus.CounterVec

	// Catalog Metrics
	catalogProjects  prometheus.Gauge
	catalogEmployees prometheus.Gauge

	// Batch Metrics - Staffing every project at once
	batchRuns     *prometheus.CounterVec
	batchDuration prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
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
		namespace:        "staffer",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// A disabled manager still works but exports nothing.
	if !m.enabled {
		m.registry = prometheus.NewRegistry()
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// RefreshInterval returns how often gauge metrics should be refreshed.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.customLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Staffing Metrics
	m.staffingRequests = auto.NewCounterVec(
		m.counterOpts("staffing_requests_total", "Total number of staffing requests by outcome"),
		[]string{"outcome"},
	)

	m.candidatesEvaluated = auto.NewCounter(
		m.counterOpts("candidates_evaluated_total", "Total number of employees considered for a project"),
	)

	m.candidatesAdmitted = auto.NewCounter(
		m.counterOpts("candidates_admitted_total", "Total number of employees that passed every hard filter"),
	)

	m.candidatesRejected = auto.NewCounterVec(
		m.counterOpts("candidates_rejected_total", "Total number of employees removed by a hard filter"),
		[]string{"reason"},
	)

	m.shortlistSize = auto.NewHistogram(
		m.histogramOpts("shortlist_size", "Number of candidates in each produced shortlist", shortlistBuckets),
	)

	m.engineLatency = auto.NewHistogram(
		m.histogramOpts("engine_latency_milliseconds", "Time to filter, score and rank one project", m.histogramBuckets),
	)

	m.recommendations = auto.NewCounterVec(
		m.counterOpts("recommendations_total", "Total number of recommendations by confidence"),
		[]string{"confidence"},
	)

	// Catalog Metrics
	m.catalogProjects = auto.NewGauge(
		m.gaugeOpts("catalog_projects", "Number of projects in the loaded catalog"),
	)

	m.catalogEmployees = auto.NewGauge(
		m.gaugeOpts("catalog_employees", "Number of employees in the loaded catalog"),
	)

	// Batch Metrics
	m.batchRuns = auto.NewCounterVec(
		m.counterOpts("batch_runs_total", "Total number of batch staffing runs by outcome"),
		[]string{"outcome"},
	)

	m.batchDuration = auto.NewHistogram(
		m.histogramOpts("batch_duration_milliseconds", "Duration of batch staffing runs", m.histogramBuckets),
	)

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics - Detailed error tracking
	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		m.counterOpts("errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		m.histogramOpts("error_latency_milliseconds", "Latency of operations that resulted in errors", m.histogramBuckets),
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(
		m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"),
	)

	m.systemGoroutineCount = auto.NewGauge(
		m.gaugeOpts("system_goroutine_count", "Number of goroutines"),
	)

	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// Staffing Metrics Functions.

// RecordStaffingRequest counts a staffing request with its outcome
// (for example "shortlisted", "empty", "not_found").
func RecordStaffingRequest(outcome string) {
	globalManager.staffingRequests.WithLabelValues(outcome).Inc()
}

// RecordCandidatesEvaluated adds n to the evaluated employees counter.
func RecordCandidatesEvaluated(n int) {
	globalManager.candidatesEvaluated.Add(float64(n))
}

// RecordCandidatesAdmitted adds n to the admitted employees counter.
func RecordCandidatesAdmitted(n int) {
	globalManager.candidatesAdmitted.Add(float64(n))
}

// RecordCandidatesRejected adds n rejections for reason.
func RecordCandidatesRejected(reason string, n int) {
	globalManager.candidatesRejected.WithLabelValues(reason).Add(float64(n))
}

// RecordShortlistSize observes the length of a produced shortlist.
func RecordShortlistSize(n int) {
	globalManager.shortlistSize.Observe(float64(n))
}

// RecordEngineLatency records engine latency in milliseconds.
func RecordEngineLatency(latencyMs float64) {
	globalManager.engineLatency.Observe(latencyMs)
}

// RecordRecommendation counts a recommendation by confidence level.
func RecordRecommendation(confidence string) {
	globalManager.recommendations.WithLabelValues(confidence).Inc()
}

// UpdateCatalogProjects sets the number of catalog projects.
func UpdateCatalogProjects(count int) {
	globalManager.catalogProjects.Set(float64(count))
}

// UpdateCatalogEmployees sets the number of catalog employees.
func UpdateCatalogEmployees(count int) {
	globalManager.catalogEmployees.Set(float64(count))
}

// RecordBatchRun counts a batch run and records its duration.
func RecordBatchRun(outcome string, durationMs float64) {
	globalManager.batchRuns.WithLabelValues(outcome).Inc()
	globalManager.batchDuration.Observe(durationMs)
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// RefreshInterval returns the refresh interval of the global manager.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
