package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to start (e.g. the port is already bound).
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown reported an error.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrForcedShutdown indicates that graceful shutdown did not finish in time
	// and the listener was closed forcibly.
	ErrForcedShutdown = errors.New("HTTP server shutdown timed out, connections were force-closed")
	// ErrUnhandledFailure indicates that shutdown was triggered by a failure
	// reported from a background task.
	ErrUnhandledFailure = errors.New("unhandled background failure")
)

// ExitCode maps the result of Run to a process exit code:
// 0 for a clean shutdown, 1 for every error path.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
