// Package handler turns request failures into the uniform JSON error body.
//
// NewErrorHandler builds the ErrorHandler every other component reports to.
// Recoverer, NotFound and MethodNotAllowed are thin adapters that create the
// right *core.AppError and hand it over:
//
//	errHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{Environment: env})
//	r.Use(handler.Recoverer(errHandler))
//	r.NotFound(handler.NotFound(errHandler))
//	r.MethodNotAllowed(handler.MethodNotAllowed(errHandler))
//
// The response body only contains allow-listed properties. The stack trace is
// included in development only:
//
//	{
//	  "success": false,
//	  "message": "Route not found: GET /nope",
//	  "error": {
//	    "name": "AppError",
//	    "message": "Route not found: GET /nope",
//	    "code": "route.not_found",
//	    "statusCode": 404
//	  }
//	}
package handler
