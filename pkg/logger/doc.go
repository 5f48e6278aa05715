// Package logger provides a context-aware wrapper around Go's slog package:
// a New factory configured with functional options, helper attribute
// constructors, a handler decorator that injects values stored in
// context.Context, and an HTTP request logging middleware.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.Environment), "api"),
//	    logger.WithLevelString(cfg.LogLevel),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        clientip.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	r.Use(logger.Middleware(log))
//
// # Configuration
//
//   - WithEnvironment – per-environment format and level plus service/env attributes.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel / WithLevelString – set the minimum level explicitly.
//   - WithAttr – attach static attributes.
//   - WithContextExtractors – inject attributes from context.
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no additional nil check.
package logger
