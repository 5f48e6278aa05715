package pg

import "time"

// Config holds PostgreSQL pool settings. An empty ConnectionString means the
// database is not configured.
type Config struct {
	ConnectionString  string        `env:"DATABASE_URL"`                           // ConnectionString is the postgres URL or DSN.
	MaxConns          int32         `env:"PG_MAX_CONNS" envDefault:"10"`           // MaxConns is the maximum number of open connections.
	MinConns          int32         `env:"PG_MIN_CONNS" envDefault:"0"`            // MinConns is the number of connections kept open in the background.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // HealthCheckPeriod is the period between pool health checks.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // MaxConnIdleTime is the maximum time a connection may stay idle.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // MaxConnLifetime is the maximum time a connection may be reused.
	PingTimeout       time.Duration `env:"PG_PING_TIMEOUT" envDefault:"2s"`        // PingTimeout bounds a single readiness ping.
}

// Configured reports whether a connection string was provided.
func (c Config) Configured() bool {
	return c.ConnectionString != ""
}
