package environment

import (
	"context"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development enables verbose logging and exposes stack traces in error responses.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Test for automated test runs.
	Test Environment = "test"
)

// Parse normalises a raw value such as the NODE_ENV variable.
// Known aliases ("dev", "prod", "stage") map to their canonical names,
// anything else is returned lower-cased and trimmed.
//
// Parse is meant for choosing defaults such as log format. Decisions that
// expose diagnostics compare the raw value, see IsDevelopment.
func Parse(raw string) Environment {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "dev":
		return Development
	case "prod":
		return Production
	case "stage":
		return Staging
	}
	return Environment(v)
}

// String implements fmt.Stringer.
func (e Environment) String() string { return string(e) }

// IsDevelopment reports whether e is exactly "development".
func (e Environment) IsDevelopment() bool { return e == Development }

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// IsDevelopment checks if the environment from context is exactly "development".
// Aliases and other spellings do not count.
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx).IsDevelopment()
}

// IsStaging checks if the environment from context is staging
func IsStaging(ctx context.Context) bool {
	return FromContext(ctx) == Staging
}
