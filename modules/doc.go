// Package modules holds the application route table.
//
// Each entry maps a URL prefix to a sub-router. The table is mounted under
// /api/v1 by the root router, after the health check and before the
// not-found handler, so every entry inherits CORS, body parsing and the
// error formatter.
package modules
