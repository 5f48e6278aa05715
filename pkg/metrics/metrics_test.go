package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apistarter/pkg/metrics"
)

func newRouter(m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	return r
}

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	t.Parallel()

	m := metrics.New(metrics.WithNamespace("test"), metrics.WithoutRuntimeMetrics())
	h := newRouter(m)

	for _, path := range []string{"/users/1", "/users/2"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fail", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	count, err := testutil.GatherAndCount(m.Registry(), "test_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per method/route/status")

	count, err = testutil.GatherAndCount(m.Registry(), "test_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	m := metrics.New(metrics.WithoutRuntimeMetrics())
	h := newRouter(m)

	for _, path := range []string{"/a", "/b", "/c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "all unmatched paths share a single series")
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	t.Parallel()

	m := metrics.New(metrics.WithoutRuntimeMetrics())
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	count, err := testutil.GatherAndCount(m.Registry(), "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := metrics.New(metrics.WithConstLabels(map[string]string{"service": "api"}))
	h := newRouter(m)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/1", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/users/{id}",service="api",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestWithBucketsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { metrics.WithBuckets() })
}
