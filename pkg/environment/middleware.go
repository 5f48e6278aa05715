package environment

import "net/http"

// Middleware attaches env to every request context so handlers and the error
// formatter can make environment-aware decisions without extra parameters.
// The value is stored as given.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}
