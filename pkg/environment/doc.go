// Package environment propagates the current application environment
// (development, staging, production, test) through context.Context, HTTP
// requests and structured logs.
//
// The server reads the raw value from NODE_ENV and attaches it unchanged to
// every request with Middleware. Downstream code, most notably the error
// formatter, uses IsDevelopment to decide whether stack traces may be exposed
// to clients; only the exact value "development" qualifies. Parse maps
// aliases such as "dev" or "PROD" and is used for logging defaults only.
//
//	r.Use(environment.Middleware(environment.Environment(os.Getenv("NODE_ENV"))))
//
//	if environment.IsDevelopment(r.Context()) {
//	    // include diagnostics
//	}
//
// LoggerExtractor returns a slog context extractor that adds the "env"
// attribute to log records.
//
// Missing values result in the zero value ("") and never an error.
package environment
