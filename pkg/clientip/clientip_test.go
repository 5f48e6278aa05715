package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/apistarter/pkg/clientip"
)

func TestResolverIP(t *testing.T) {
	t.Parallel()

	trusting := clientip.NewResolver(clientip.WithTrustedHeaders(clientip.ProxyHeaders...))
	direct := clientip.NewResolver()

	tests := []struct {
		name       string
		resolver   *clientip.Resolver
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", direct, "203.0.113.7:4312", nil, "203.0.113.7"},
		{"remote addr without port", direct, "203.0.113.7", nil, "203.0.113.7"},
		{"ipv6 remote addr", direct, "[2001:db8::1]:443", nil, "2001:db8::1"},
		{"headers ignored when not trusted", direct, "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.1"}, "10.0.0.1"},
		{"forwarded for first valid", trusting, "10.0.0.1:80", map[string]string{"X-Forwarded-For": "garbage, 198.51.100.1, 10.0.0.2"}, "198.51.100.1"},
		{"header priority", trusting, "10.0.0.1:80", map[string]string{"CF-Connecting-IP": "192.0.2.9", "X-Forwarded-For": "198.51.100.1"}, "192.0.2.9"},
		{"invalid headers fall back", trusting, "10.0.0.1:80", map[string]string{"X-Real-IP": "not-an-ip"}, "10.0.0.1"},
		{"nothing valid", direct, "pipe", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, tt.resolver.IP(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.44:5555"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.44", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "192.0.2.1"))
	assert.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}
