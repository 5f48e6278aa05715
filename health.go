package apistarter

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/apistarter/handler"
	"github.com/dmitrymomot/apistarter/pkg/environment"
)

// TimestampFormat renders health check timestamps in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
	TimeStamp   string `json:"timeStamp"`
}

// HealthHandler always answers 200 with the active environment and the current time.
func HealthHandler(env environment.Environment, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		handler.WriteJSON(w, http.StatusOK, HealthResponse{
			Success:     true,
			Message:     "Server is running",
			Environment: env.String(),
			TimeStamp:   now().UTC().Format(TimestampFormat),
		})
	}
}
