// Package metrics exposes Prometheus instrumentation for the API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// User cache
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_cache_lookups_total",
			Help: "User cache lookups by result",
		},
		[]string{"result"},
	)

	// Favorites
	FavoriteChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_changes_total",
			Help: "Favorites added or removed, by kind",
		},
		[]string{"action", "kind"},
	)

	// Uploads
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Uploaded files by outcome",
		},
		[]string{"outcome"},
	)

	// Reports
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_generated_total",
			Help: "Favorites reports rendered, by kind and format",
		},
		[]string{"kind", "format"},
	)

	ReportRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_render_duration_seconds",
			Help:    "Time spent rendering favorites reports",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup counts a user cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}

// RecordFavoriteChange counts an add or remove of a favorite.
func RecordFavoriteChange(action, kind string) {
	FavoriteChanges.WithLabelValues(action, kind).Inc()
}

// RecordUpload counts an upload by outcome: stored, rejected or failed.
func RecordUpload(outcome string) {
	UploadsTotal.WithLabelValues(outcome).Inc()
}

// RecordReport records a rendered report.
func RecordReport(kind, format string, duration time.Duration) {
	ReportsGenerated.WithLabelValues(kind, format).Inc()
	ReportRenderDuration.WithLabelValues(format).Observe(duration.Seconds())
}
