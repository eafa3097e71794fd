// Package metrics provides Prometheus metrics for the meeting service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusFailed   = "failed"
)

var (
	// httpRequestsTotal counts handled requests.
	// Labels:
	//   - route: chi route pattern (e.g. "/join"), "unmatched" for 404s
	//   - method: HTTP method
	//   - code: response status code
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meeting_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"route", "method"},
	)

	// remoteCallsTotal counts calls to Chime, media pipelines, DynamoDB and the LMS.
	// Labels:
	//   - service: remote service name (e.g. "chime", "pipelines")
	//   - operation: API operation (e.g. "CreateMeeting")
	//   - status: success, not_found or failed
	remoteCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_remote_calls_total",
			Help: "Total number of calls to remote services",
		},
		[]string{"service", "operation", "status"},
	)

	remoteCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meeting_remote_call_duration_seconds",
			Help:    "Duration of calls to remote services in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"service", "operation"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(remoteCallsTotal)
	prometheus.MustRegister(remoteCallDuration)
}

// RecordRemoteCall records one remote call and how long it took.
func RecordRemoteCall(service, operation, status string, started time.Time) {
	remoteCallsTotal.WithLabelValues(service, operation, status).Inc()
	remoteCallDuration.WithLabelValues(service, operation).Observe(time.Since(started).Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// HTTP records request count and latency per chi route pattern.
func HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(started).Seconds())
	})
}
