// Package metrics exposes Prometheus instrumentation for the HTTP layer
// and the record store.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "police_profiling_http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "police_profiling_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	recordsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "police_profiling_records_created_total",
			Help: "Records created by record type.",
		},
		[]string{"record_type"},
	)

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "police_profiling_logins_total",
			Help: "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Middleware records request counts and latencies per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// RecordCreated bumps the creation counter for a record type
// ("criminal", "crime", "evidence", "document", "officer").
func RecordCreated(recordType string) {
	recordsCreatedTotal.WithLabelValues(recordType).Inc()
}

// LoginAttempt bumps the login counter with the given outcome
// ("success", "invalid_credentials", "pending_activation").
func LoginAttempt(outcome string) {
	loginsTotal.WithLabelValues(outcome).Inc()
}
