package observer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsEnabled = true // Flag to control metric collection

	httpRequestLabels = []string{"method", "path", "status"}
	dbOperationLabels = []string{"operation", "entity", "status"}

	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supportdesk_api_http_requests_total",
			Help: "Total number of HTTP requests handled, labeled by method, route and status code.",
		},
		httpRequestLabels,
	)

	// HTTPRequestDurationSeconds tracks end-to-end request handling time.
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supportdesk_api_http_request_duration_seconds",
			Help:    "Histogram of HTTP request handling durations.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		httpRequestLabels,
	)

	// DatabaseOperationDurationSeconds tracks storage-layer query time.
	DatabaseOperationDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supportdesk_api_db_operation_duration_seconds",
			Help:    "Histogram of database operation durations, labeled by operation, entity and outcome.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		dbOperationLabels,
	)

	// HealthCheckFailuresTotal counts failed dependency checks by dependency name.
	HealthCheckFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supportdesk_api_health_check_failures_total",
			Help: "Total number of failed dependency health checks.",
		},
		[]string{"dependency"},
	)
)

// InitMetrics controls whether the helpers below record anything.
// Metrics are auto-registered via promauto; this only flips collection.
func InitMetrics(enabled bool) {
	metricsEnabled = enabled
}

// ObserveHTTPRequest records one handled HTTP request.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if !metricsEnabled {
		return
	}
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveDbOperationDuration records the duration for a database operation.
func ObserveDbOperationDuration(operation, entity string, duration time.Duration, err error) {
	if !metricsEnabled {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	DatabaseOperationDurationSeconds.WithLabelValues(operation, entity, status).Observe(duration.Seconds())
}

// IncHealthCheckFailure counts a failed dependency check.
func IncHealthCheckFailure(dependency string) {
	if !metricsEnabled {
		return
	}
	HealthCheckFailuresTotal.WithLabelValues(dependency).Inc()
}
