package strada

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects per-route request counts and latencies. Routes are
// labeled by their registered pattern, not the concrete path, to keep
// cardinality bounded.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "strada",
		Name:      "requests_total",
		Help:      "Requests dispatched, by method, route pattern and status.",
	}, []string{"method", "pattern", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "strada",
		Name:      "request_duration_seconds",
		Help:      "Request handling latency, by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "pattern"})

	registry.MustRegister(requests, duration)

	return &Metrics{
		registry: registry,
		requests: requests,
		duration: duration,
	}
}

// Middleware returns middleware that records the request against the matched
// route's pattern.
func (m *Metrics) Middleware() MiddlewareFunc {
	return func(c *Context) {
		start := time.Now()
		c.Next()

		pattern := "unmatched"
		if c.route != nil {
			pattern = c.route.pattern
		}

		m.requests.WithLabelValues(
			c.request.Method,
			pattern,
			strconv.Itoa(c.StatusCode()),
		).Inc()
		m.duration.WithLabelValues(c.request.Method, pattern).
			Observe(time.Since(start).Seconds())
	}
}

// Handler returns the scrape endpoint for this Metrics' registry, ready to
// mount on an engine route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
