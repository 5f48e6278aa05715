// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses a valid incoming X-Request-ID header (letters, digits,
// '-' and '_', at most 128 bytes) and otherwise generates a UUIDv4. The id is
// stored in the request context and echoed back in the response header.
// New accepts options for a custom header, generator, or for ignoring
// client supplied values.
//
// LoggerExtractor plugs the id into pkg/logger so every record written with
// the request context carries a request_id attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
