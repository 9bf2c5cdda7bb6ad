package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Query layer metrics
	listFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "list_fetch_duration_seconds",
			Help:    "Duration of page list fetches in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"entity"},
	)

	fetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_errors_total",
			Help: "Total number of failed list or count fetches",
		},
		[]string{"entity"},
	)

	dashboardCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_total",
			Help: "Dashboard summary cache lookups by result",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency labelled by the matched route template.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		path := routePath(r)
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// routePath keeps label cardinality bounded by using the route template when one matched.
func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}

// RecordListFetch records the duration of one list query.
func RecordListFetch(entity string, duration time.Duration) {
	listFetchDuration.WithLabelValues(entity).Observe(duration.Seconds())
}

// RecordFetchError records a failed list or count query.
func RecordFetchError(entity string) {
	fetchErrorsTotal.WithLabelValues(entity).Inc()
}

// RecordDashboardCache records a cache hit or miss.
func RecordDashboardCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	dashboardCacheTotal.WithLabelValues(result).Inc()
}
