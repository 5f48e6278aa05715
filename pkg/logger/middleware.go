package logger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware logs one record per request once the response has been written.
// 5xx responses are logged at ERROR, 4xx at WARN, everything else at INFO.
// Context extractors registered on log (request id, environment) are applied
// because the request context is passed through.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				level := slog.LevelInfo
				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				}

				log.LogAttrs(r.Context(), level, "http request",
					Method(r.Method),
					Path(r.URL.Path),
					StatusCode(status),
					slog.Int("bytes", ww.BytesWritten()),
					Duration(time.Since(start)),
					slog.String("remote_addr", r.RemoteAddr),
					Component("http"),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
