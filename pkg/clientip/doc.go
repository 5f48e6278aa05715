// Package clientip resolves the originating client address of a request.
//
// By default only the TCP peer address (RemoteAddr) is used. Behind a reverse
// proxy, enable WithTrustedHeaders so forwarded headers are read first:
//
//	res := clientip.NewResolver(clientip.WithTrustedHeaders(clientip.ProxyHeaders...))
//	r.Use(clientip.Middleware(res))
//
// The resolved address is stored in the request context and is added to log
// records through LoggerExtractor.
package clientip
