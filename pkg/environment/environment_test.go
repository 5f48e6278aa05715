package environment_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apistarter/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := map[string]environment.Environment{
		"development":  environment.Development,
		"dev":          environment.Development,
		" Production ": environment.Production,
		"prod":         environment.Production,
		"STAGE":        environment.Staging,
		"test":         environment.Test,
		"qa":           environment.Environment("qa"),
		"":             environment.Environment(""),
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, environment.Parse(raw))
		})
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Development.IsDevelopment())
	assert.False(t, environment.Development.IsProduction())
	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Staging.IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("stored value is returned", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Staging)
		assert.Equal(t, environment.Staging, environment.FromContext(ctx))
		assert.True(t, environment.IsStaging(ctx))
		assert.False(t, environment.IsProduction(ctx))
	})

	t.Run("missing value is empty", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Empty(t, environment.FromContext(ctx))
		assert.False(t, environment.IsDevelopment(ctx))
	})

	t.Run("nil context is empty", func(t *testing.T) {
		t.Parallel()
		//nolint:staticcheck // nil context is handled explicitly
		assert.Empty(t, environment.FromContext(nil))
	})

	t.Run("helpers require the exact value", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"dev", "Development", " development", "DEVELOPMENT"} {
			ctx := environment.WithContext(context.Background(), environment.Environment(raw))
			assert.False(t, environment.IsDevelopment(ctx), raw)
			assert.False(t, environment.Environment(raw).IsDevelopment(), raw)
		}

		ctx := environment.WithContext(context.Background(), environment.Environment("prod"))
		assert.False(t, environment.IsProduction(ctx))

		ctx = environment.WithContext(context.Background(), environment.Development)
		assert.True(t, environment.IsDevelopment(ctx))
	})

	t.Run("inner value overrides outer", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Development)
		ctx = environment.WithContext(ctx, environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	h := environment.Middleware("PROD")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, environment.Environment("PROD"), got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	attr, ok := extract(environment.WithContext(context.Background(), environment.Test))
	require.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "test", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
