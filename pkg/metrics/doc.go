// Package metrics exposes Prometheus HTTP metrics on a dedicated registry.
//
// Middleware counts requests by method, chi route pattern and status code,
// observes latency and tracks in-flight requests. Handler serves the registry
// for scraping:
//
//	m := metrics.New(metrics.WithNamespace("apistarter"))
//	r.Use(m.Middleware)
//	r.Method(http.MethodGet, "/metrics", m.Handler())
//
// Requests that match no route share the "unmatched" route label.
package metrics
