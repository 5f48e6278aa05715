package handler

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/apistarter/core"
)

// Error codes for routing failures.
const (
	CodeRouteNotFound         = "route.not_found"
	CodeRouteMethodNotAllowed = "route.method_not_allowed"
)

// NotFound returns a handler that reports an unmatched route as a 404 AppError.
func NotFound(errorHandler ErrorHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		errorHandler(w, r, core.NotFound(
			fmt.Sprintf("Route not found: %s %s", r.Method, r.URL.Path),
			core.WithCode(CodeRouteNotFound),
		))
	}
}

// MethodNotAllowed returns a handler that reports a known path requested with
// an unsupported method as a 405 AppError.
func MethodNotAllowed(errorHandler ErrorHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		errorHandler(w, r, core.NewAppError(http.StatusMethodNotAllowed,
			fmt.Sprintf("Method not allowed: %s %s", r.Method, r.URL.Path),
			core.WithCode(CodeRouteMethodNotAllowed),
		))
	}
}
