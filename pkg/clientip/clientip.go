package clientip

import (
	"net"
	"net/http"
	"strings"
)

// ProxyHeaders are consulted, in order, when proxy headers are trusted.
var ProxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolver extracts the client address from a request.
type Resolver struct {
	headers []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTrustedHeaders makes the resolver read the given headers, in order,
// before falling back to RemoteAddr. Only enable this behind a proxy that
// overwrites these headers.
func WithTrustedHeaders(headers ...string) Option {
	return func(r *Resolver) { r.headers = headers }
}

// NewResolver creates a Resolver. Without options only RemoteAddr is used.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IP returns the normalised client IP, or "" if none is valid.
// For X-Forwarded-For the first valid entry wins.
func (res *Resolver) IP(r *http.Request) string {
	for _, header := range res.headers {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		for ip := range strings.SplitSeq(value, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
