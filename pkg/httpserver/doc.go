// Package httpserver runs a single net/http server through a supervised
// lifecycle: starting, running, closing, stopped (or crashed).
//
// Run binds the listener, serves the handler and blocks until one of the
// following happens: a termination signal arrives (os.Interrupt or SIGTERM by
// default), the context is cancelled, Shutdown is called, or background work
// reports a failure via Fail or Go. Shutdown stops accepting connections,
// drains in-flight requests and waits for background tasks. If that takes
// longer than the shutdown timeout (30s by default), or a second termination
// signal arrives, remaining connections are force-closed.
//
// A stop request that arrives before the listener is bound makes Run return
// immediately without serving. A panic inside a task started with Go is an
// uncaught failure: it is logged and the crash handler exits the process with
// status 1 without waiting for a graceful close.
//
// Errors returned by Run wrap ErrStart, ErrShutdown, ErrForcedShutdown or
// ErrUnhandledFailure; ExitCode maps any of them to 1 and nil to 0.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
//	err := srv.Run(context.Background(), router)
//	os.Exit(httpserver.ExitCode(err))
//
// ReadinessHandler turns a list of named probes into a JSON readiness
// endpoint that answers 503 while any probe fails.
package httpserver
