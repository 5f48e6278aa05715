package core

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// Status values derived from the HTTP status code of an AppError.
const (
	StatusFail  = "fail"
	StatusError = "error"
)

// maxStackDepth bounds the number of frames captured for an AppError.
const maxStackDepth = 32

// AppError represents an application-level failure that carries an HTTP
// status code and an operational/programming classification.
//
// Operational errors are expected conditions (bad input, missing resources)
// that produce a clean client response. Non-operational errors indicate a
// defect in the program.
type AppError struct {
	StatusCode  int              // HTTP status code
	Message     string           // Human readable message
	Operational bool             // true for expected failures, false for programming defects
	Status      string           // "fail" for 4xx codes, "error" otherwise
	Stack       string           // Diagnostic trace captured at construction
	Code        string           // Optional machine readable code, e.g. "entity.parse.failed"
	Errors      ValidationErrors // Optional field level details
	Err         error            // Optional wrapped cause, never serialised
}

// AppErrorOption configures an AppError during construction.
type AppErrorOption func(*AppError)

// WithOperational overrides the operational flag (default true).
func WithOperational(operational bool) AppErrorOption {
	return func(e *AppError) { e.Operational = operational }
}

// WithStack stores the supplied trace verbatim instead of capturing one.
// An empty stack is ignored.
func WithStack(stack string) AppErrorOption {
	return func(e *AppError) {
		if stack != "" {
			e.Stack = stack
		}
	}
}

// WithCode sets a machine readable error code.
func WithCode(code string) AppErrorOption {
	return func(e *AppError) { e.Code = code }
}

// WithErrors attaches field level validation details.
func WithErrors(errs ValidationErrors) AppErrorOption {
	return func(e *AppError) { e.Errors = errs }
}

// WithCause wraps the underlying error so it stays reachable via errors.Is/As.
func WithCause(err error) AppErrorOption {
	return func(e *AppError) { e.Err = err }
}

// NewAppError creates an AppError. It never fails.
//
// Example:
//
//	return core.NewAppError(http.StatusNotFound, "user not found")
//	return core.NewAppError(http.StatusInternalServerError, "invariant broken",
//		core.WithOperational(false),
//	)
func NewAppError(statusCode int, message string, opts ...AppErrorOption) *AppError {
	return newAppError(statusCode, message, opts)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsClientError reports whether the status code is in the 4xx range.
func (e *AppError) IsClientError() bool {
	return isClientCode(e.StatusCode)
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}

// BadRequest creates a 400 operational error.
func BadRequest(message string, opts ...AppErrorOption) *AppError {
	return newAppError(http.StatusBadRequest, message, opts)
}

// Unauthorized creates a 401 operational error.
func Unauthorized(message string, opts ...AppErrorOption) *AppError {
	return newAppError(http.StatusUnauthorized, message, opts)
}

// Forbidden creates a 403 operational error.
func Forbidden(message string, opts ...AppErrorOption) *AppError {
	return newAppError(http.StatusForbidden, message, opts)
}

// NotFound creates a 404 operational error.
func NotFound(message string, opts ...AppErrorOption) *AppError {
	return newAppError(http.StatusNotFound, message, opts)
}

// Conflict creates a 409 operational error.
func Conflict(message string, opts ...AppErrorOption) *AppError {
	return newAppError(http.StatusConflict, message, opts)
}

// UnprocessableEntity creates a 422 operational error with validation details.
func UnprocessableEntity(message string, errs ValidationErrors, opts ...AppErrorOption) *AppError {
	return newAppError(http.StatusUnprocessableEntity, message, append([]AppErrorOption{WithErrors(errs)}, opts...))
}

// Internal creates a 500 non-operational error wrapping cause.
func Internal(message string, cause error, opts ...AppErrorOption) *AppError {
	return newAppError(http.StatusInternalServerError, message,
		append([]AppErrorOption{WithOperational(false), WithCause(cause)}, opts...))
}

// newAppError must be called directly by an exported constructor so the
// captured trace starts at that constructor's caller.
func newAppError(statusCode int, message string, opts []AppErrorOption) *AppError {
	e := &AppError{
		StatusCode:  statusCode,
		Message:     message,
		Operational: true,
		Status:      statusFromCode(statusCode),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.Stack == "" {
		// skip runtime.Callers, captureStack, newAppError and the exported constructor
		e.Stack = captureStack(4)
	}
	return e
}

func statusFromCode(code int) string {
	if isClientCode(code) {
		return StatusFail
	}
	return StatusError
}

func isClientCode(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}

func captureStack(skip int) string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
