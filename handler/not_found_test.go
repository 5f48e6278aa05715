package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apistarter/handler"
	"github.com/dmitrymomot/apistarter/pkg/environment"
)

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	errHandler := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{Environment: environment.Production})
	r := chi.NewRouter()
	r.NotFound(handler.NotFound(errHandler))
	r.MethodNotAllowed(handler.MethodNotAllowed(errHandler))
	r.Get("/items", func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, handler.CodeRouteNotFound, "Route not found: GET /nope"},
		{"unknown path post", http.MethodPost, "/a/b", http.StatusNotFound, handler.CodeRouteNotFound, "Route not found: POST /a/b"},
		{"wrong method", http.MethodDelete, "/items", http.StatusMethodNotAllowed, handler.CodeRouteMethodNotAllowed, "Method not allowed: DELETE /items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handler.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantStatus, body.Error.StatusCode)
			assert.Empty(t, body.Error.Stack)
		})
	}
}
