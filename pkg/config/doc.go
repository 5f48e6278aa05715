// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files (default: ./.env, optional).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type for the lifetime of the process.
//   - Parse does the same without touching the cache.
//   - MustLoad panics on failure for configuration the process cannot start without.
//   - ResetCache clears the cache between tests.
//
// # Usage
//
//	type Config struct {
//	    Port        int    `env:"PORT" envDefault:"5001"`
//	    DatabaseURL string `env:"DATABASE_URL"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Errors
//
// ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer can be matched with errors.Is.
package config
