package apistarter

import (
	"github.com/dmitrymomot/apistarter/pkg/bodyparser"
	"github.com/dmitrymomot/apistarter/pkg/config"
	"github.com/dmitrymomot/apistarter/pkg/environment"
	"github.com/dmitrymomot/apistarter/pkg/httpserver"
	"github.com/dmitrymomot/apistarter/pkg/pg"
)

// Config is the application configuration loaded from the environment and an
// optional .env file.
type Config struct {
	Environment    string `env:"NODE_ENV"`                                       // Environment label, e.g. development or production. Unset means none.
	ServiceName    string `env:"SERVICE_NAME" envDefault:"apistarter"`           // ServiceName is attached to logs and metrics.
	LogLevel       string `env:"LOG_LEVEL"`                                      // LogLevel overrides the environment default when set.
	CORSOrigin     string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"` // CORSOrigin is the single origin allowed to call the API with credentials.
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`              // MetricsEnabled exposes /metrics and records request metrics.
	TrustProxy     bool   `env:"TRUST_PROXY" envDefault:"false"`                 // TrustProxy reads the client IP from forwarded headers.

	Server   httpserver.Config
	Body     bodyparser.Config
	Database pg.Config
}

// Env returns the environment exactly as configured.
func (c Config) Env() environment.Environment {
	return environment.Environment(c.Environment)
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
