package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Option configures the request ID middleware.
type Option func(*config)

type config struct {
	header    string
	generator func() string
	trust     bool
}

// WithHeader changes the header used to read and echo the request ID.
func WithHeader(name string) Option {
	if name == "" {
		panic("requestid.WithHeader: empty header name")
	}
	return func(c *config) { c.header = name }
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	if fn == nil {
		panic("requestid.WithGenerator: nil generator")
	}
	return func(c *config) { c.generator = fn }
}

// WithTrustIncoming controls whether a valid client supplied ID is reused (default true).
func WithTrustIncoming(trust bool) Option {
	return func(c *config) { c.trust = trust }
}

// New returns a middleware that attaches a request ID to every request.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		header:    Header,
		generator: uuid.NewString,
		trust:     true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := ""
			if cfg.trust {
				if id := r.Header.Get(cfg.header); isValidRequestID(id) {
					requestID = id
				}
			}
			if requestID == "" {
				requestID = cfg.generator()
			}
			w.Header().Set(cfg.header, requestID)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
