package bodyparser

import "context"

type rawBodyKey struct{}

// WithRawBody stores the raw request body in ctx.
func WithRawBody(ctx context.Context, body []byte) context.Context {
	return context.WithValue(ctx, rawBodyKey{}, body)
}

// RawBody returns the body captured by JSON or URLEncoded, if any.
func RawBody(ctx context.Context) ([]byte, bool) {
	if ctx == nil {
		return nil, false
	}
	body, ok := ctx.Value(rawBodyKey{}).([]byte)
	return body, ok
}
