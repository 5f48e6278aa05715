package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apistarter/pkg/requestid"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when header is missing", func(t *testing.T) {
		t.Parallel()

		id, rec := serve(t, requestid.Middleware, httptest.NewRequest(http.MethodGet, "/", nil))
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses valid incoming id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "trace_abc-123")
		id, rec := serve(t, requestid.Middleware, req)
		assert.Equal(t, "trace_abc-123", id)
		assert.Equal(t, "trace_abc-123", rec.Header().Get(requestid.Header))
	})

	invalid := map[string]string{
		"spaces":      "has spaces",
		"injection":   "abc\r\nX-Evil: 1",
		"punctuation": "abc;drop",
		"too long":    strings.Repeat("a", 129),
	}
	for name, value := range invalid {
		t.Run("replaces invalid id: "+name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestid.Header, value)
			id, _ := serve(t, requestid.Middleware, req)
			assert.NotEqual(t, value, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}

	t.Run("accepts id at max length", func(t *testing.T) {
		t.Parallel()

		value := strings.Repeat("b", 128)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, value)
		id, _ := serve(t, requestid.Middleware, req)
		assert.Equal(t, value, id)
	})
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom header and generator", func(t *testing.T) {
		t.Parallel()

		mw := requestid.New(
			requestid.WithHeader("X-Correlation-ID"),
			requestid.WithGenerator(func() string { return "fixed" }),
		)
		id, rec := serve(t, mw, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "fixed", id)
		assert.Equal(t, "fixed", rec.Header().Get("X-Correlation-ID"))
		assert.Empty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("untrusted incoming id is ignored", func(t *testing.T) {
		t.Parallel()

		mw := requestid.New(
			requestid.WithTrustIncoming(false),
			requestid.WithGenerator(func() string { return "server-side" }),
		)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "client-side")
		id, _ := serve(t, mw, req)
		assert.Equal(t, "server-side", id)
	})

	t.Run("invalid options panic", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { requestid.WithHeader("") })
		assert.Panics(t, func() { requestid.WithGenerator(nil) })
	})
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
