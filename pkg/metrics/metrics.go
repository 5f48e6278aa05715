package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedRoute labels requests that matched no route, keeping label cardinality bounded.
const UnmatchedRoute = "unmatched"

// Metrics holds the HTTP collectors and the registry they are registered in.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// Option configures Metrics.
type Option func(*options)

type options struct {
	namespace      string
	buckets        []float64
	runtimeMetrics bool
	constLabels    prometheus.Labels
}

// WithNamespace prefixes every metric name.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithBuckets overrides the request duration histogram buckets.
func WithBuckets(buckets ...float64) Option {
	if len(buckets) == 0 {
		panic("metrics.WithBuckets: at least one bucket required")
	}
	return func(o *options) { o.buckets = buckets }
}

// WithoutRuntimeMetrics skips the Go runtime and process collectors.
func WithoutRuntimeMetrics() Option {
	return func(o *options) { o.runtimeMetrics = false }
}

// WithConstLabels attaches labels to every HTTP metric, e.g. the service name.
func WithConstLabels(labels map[string]string) Option {
	return func(o *options) { o.constLabels = labels }
}

// New creates a dedicated registry with HTTP request collectors.
func New(opts ...Option) *Metrics {
	o := &options{
		buckets:        prometheus.DefBuckets,
		runtimeMetrics: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	registry := prometheus.NewRegistry()
	if o.runtimeMetrics {
		registry.MustRegister(collectors.NewGoCollector())
		registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total number of HTTP requests by method, route and status code.",
			ConstLabels: o.constLabels,
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   o.namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency in seconds.",
			Buckets:     o.buckets,
			ConstLabels: o.constLabels,
		}, []string{"method", "route"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   o.namespace,
			Subsystem:   "http",
			Name:        "requests_in_flight",
			Help:        "Number of HTTP requests currently being served.",
			ConstLabels: o.constLabels,
		}),
	}
}

// Registry returns the underlying registry so callers can add their own collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records count, latency and in-flight requests. The route label is
// the chi route pattern, resolved after the request has been routed.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		m.inFlight.Inc()
		defer func() {
			m.inFlight.Dec()

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routePattern(r)
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}()

		next.ServeHTTP(ww, r)
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return UnmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return UnmatchedRoute
}
