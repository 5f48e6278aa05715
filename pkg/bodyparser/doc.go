// Package bodyparser provides chi-compatible middleware that reads request
// bodies once, enforces a size limit and rejects malformed payloads before
// they reach a handler.
//
// JSON handles application/json and any +json media type. URLEncoded handles
// application/x-www-form-urlencoded and fills r.PostForm. Requests with other
// content types, or without a body, pass through untouched.
//
// Failures are reported as *core.AppError values with a machine readable code:
//
//	entity.parse.failed   400  malformed body
//	entity.too.large      413  body exceeds the limit (100 KiB by default)
//	charset.unsupported   415  charset parameter not accepted
//	entity.verify.failed  403  WithVerify rejected the raw body
//
// Wire the application error formatter with WithErrorHandler so these render
// like every other failure:
//
//	r.Use(bodyparser.JSON(bodyparser.WithLimit(cfg.BodyLimit), bodyparser.WithErrorHandler(errHandler)))
//	r.Use(bodyparser.URLEncoded(bodyparser.WithErrorHandler(errHandler)))
//
// The raw body stays available to handlers through RawBody and r.Body is
// rewound, so handlers can decode it with their own types.
package bodyparser
