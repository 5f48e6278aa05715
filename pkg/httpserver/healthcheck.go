package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/apistarter/pkg/logger"
)

// Check is a named dependency probe used by ReadinessHandler.
type Check struct {
	Name  string
	Probe func(context.Context) error
}

// ReadinessReport is the JSON body written by ReadinessHandler.
type ReadinessReport struct {
	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ReadinessHandler returns a handler that runs every check with the request
// context. It answers 200 when all checks pass and 503 otherwise. With no
// checks the service is always ready.
func ReadinessHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		report := ReadinessReport{Ready: true}
		if len(checks) > 0 {
			report.Checks = make(map[string]string, len(checks))
		}

		for _, c := range checks {
			if err := c.Probe(ctx); err != nil {
				log.WarnContext(ctx, "readiness check failed",
					slog.String("check", c.Name), logger.Error(err), logger.Component("httpserver"))
				report.Ready = false
				report.Checks[c.Name] = err.Error()
				continue
			}
			report.Checks[c.Name] = "ok"
		}

		status := http.StatusOK
		if !report.Ready {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	}
}
