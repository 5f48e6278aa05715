// Package apistarter assembles the HTTP API: configuration, middleware chain,
// health and readiness endpoints, the route table and the error formatter.
//
// NewRouter returns an http.Handler with the middleware applied in a fixed
// order:
//
//	request id → client ip → environment → request log → panic recovery → metrics →
//	CORS → JSON body → URL-encoded body → routes → not found
//
// Every failure, including unmatched routes and rejected bodies, is rendered
// by handler.NewErrorHandler. The handler is served by pkg/httpserver; see
// cmd/api for the full bootstrap.
//
//	cfg, err := apistarter.LoadConfig()
//	if err != nil {
//		return err
//	}
//	router := apistarter.NewRouter(cfg, apistarter.WithLogger(log))
//	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
//	return srv.Run(ctx, router)
package apistarter
