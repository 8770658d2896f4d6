// Package metrics provides Prometheus instrumentation for the approvals API.
package metrics

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route and status bucket.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "approvals",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "approvals",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// RequestsSubmittedTotal counts submissions by risk level and initial status.
	RequestsSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "approvals",
			Name:      "requests_submitted_total",
			Help:      "Submitted requests by risk level and initial status.",
		},
		[]string{"risk_level", "status"},
	)

	// DecisionsTotal counts admin decisions by resulting status.
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "approvals",
			Name:      "decisions_total",
			Help:      "Admin decisions by resulting status.",
		},
		[]string{"status"},
	)

	// DecisionConflictsTotal counts decisions lost to a concurrent decision
	// on the same request.
	DecisionConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "approvals",
			Name:      "decision_conflicts_total",
			Help:      "Decisions rejected because the request was decided concurrently.",
		},
	)

	// AuditWritesTotal counts audit log writes by action and result.
	AuditWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "approvals",
			Name:      "audit_writes_total",
			Help:      "Audit log writes by action and result (recorded, failed).",
		},
		[]string{"action", "result"},
	)

	// IdentityFailuresTotal counts rejected credentials by reason.
	IdentityFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "approvals",
			Name:      "identity_failures_total",
			Help:      "Credential verification failures by reason.",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		RequestsSubmittedTotal,
		DecisionsTotal,
		DecisionConflictsTotal,
		AuditWritesTotal,
		IdentityFailuresTotal,
	)
}

// Middleware returns a gin middleware that records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		))

		c.Next()

		timer.ObserveDuration()
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusBucket(c.Writer.Status()),
		).Inc()
	}
}

// Handler returns the Prometheus exposition handler. When apiKey is set the
// scrape must present it in the X-API-Key header.
func Handler(apiKey string) gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		if apiKey != "" {
			key := c.GetHeader("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					gin.H{"error": gin.H{"code": "INVALID_API_KEY", "message": "Invalid or missing API key"}})
				return
			}
		}
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// statusBucket groups HTTP status codes into buckets (2xx, 3xx, 4xx, 5xx).
func statusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
