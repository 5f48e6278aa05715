package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/apistarter/core"
	"github.com/dmitrymomot/apistarter/pkg/environment"
	"github.com/dmitrymomot/apistarter/pkg/logger"
	"github.com/dmitrymomot/apistarter/pkg/requestid"
)

// DefaultMessage is used as the top level message when the error has none.
const DefaultMessage = "Something went wrong!"

// ErrorHandler renders err as the response to r. It is the single sink for
// request failures: not-found, method-not-allowed, recovered panics, body
// parser rejections and errors returned by route handlers.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// Environment decides whether stack traces are exposed. When empty the
	// value stored by environment.Middleware is used.
	Environment environment.Environment
}

// ErrorResponse is the JSON body written for every failure.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail holds the allow-listed error properties.
type ErrorDetail struct {
	Name       string                `json:"name"`
	Message    string                `json:"message"`
	Stack      string                `json:"stack,omitempty"`
	Errors     core.ValidationErrors `json:"errors,omitempty"`
	Code       string                `json:"code,omitempty"`
	StatusCode int                   `json:"statusCode,omitempty"`
}

// statusCoder is implemented by errors that carry their own HTTP status.
type statusCoder interface {
	StatusCode() int
}

// errorInfo contains classified error information
type errorInfo struct {
	status      int
	detail      ErrorDetail
	operational bool
	logLevel    slog.Level
}

// NewErrorHandler returns the error formatter. It never fails: whatever err
// is, the response is a JSON body of the form
//
//	{"success": false, "message": "...", "error": {"name": "...", "message": "..."}}
//
// Client errors are logged at WARN and everything else at ERROR.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		env := cfg.Environment
		if env == "" {
			env = environment.FromContext(r.Context())
		}

		info := classifyError(err, env.IsDevelopment())
		logError(log, r, err, info)

		message := info.detail.Message
		if message == "" {
			message = DefaultMessage
		}
		WriteJSON(w, info.status, ErrorResponse{
			Success: false,
			Message: message,
			Error:   info.detail,
		})
	}
}

// classifyError analyzes the error and returns the response status and body.
func classifyError(err error, exposeStack bool) errorInfo {
	info := errorInfo{
		status:      http.StatusInternalServerError,
		operational: false,
	}

	if err == nil {
		info.detail.Name = "Error"
		info.logLevel = slog.LevelError
		return info
	}

	var validationErr core.ValidationErrors
	if appErr, ok := core.AsAppError(err); ok {
		info.detail = ErrorDetail{
			Name:       "AppError",
			Message:    appErr.Message,
			Code:       appErr.Code,
			StatusCode: appErr.StatusCode,
		}
		if !appErr.Errors.IsEmpty() {
			info.detail.Errors = appErr.Errors
		}
		if exposeStack {
			info.detail.Stack = appErr.Stack
		}
		info.operational = appErr.Operational
	} else if errors.As(err, &validationErr) {
		info.detail = ErrorDetail{
			Name:       "ValidationError",
			Message:    validationErr.Error(),
			StatusCode: validationErr.StatusCode(),
		}
		if !validationErr.IsEmpty() {
			info.detail.Errors = validationErr
		}
		info.operational = true
	} else {
		info.detail = ErrorDetail{
			Name:    errorName(err),
			Message: err.Error(),
		}
		var sc statusCoder
		if errors.As(err, &sc) {
			info.detail.StatusCode = sc.StatusCode()
			info.operational = true
		}
	}

	if isHTTPErrorStatus(info.detail.StatusCode) {
		info.status = info.detail.StatusCode
	} else {
		// statusCode in the body always matches the status line
		info.detail.StatusCode = 0
	}

	info.logLevel = slog.LevelError
	if info.status < http.StatusInternalServerError {
		info.logLevel = slog.LevelWarn
	}
	return info
}

// errorName reports the Go type name of err. Errors built with errors.New,
// fmt.Errorf or errors.Join are named "Error".
func errorName(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.PkgPath() {
	case "errors", "fmt", "":
		return "Error"
	}
	if t.Name() == "" {
		return "Error"
	}
	return t.Name()
}

// isHTTPErrorStatus reports whether code can be written as an error status.
func isHTTPErrorStatus(code int) bool {
	return code >= http.StatusBadRequest && code <= 599
}

// logError logs the error with request context
func logError(log *slog.Logger, r *http.Request, err error, info errorInfo) {
	ctx := r.Context()
	log.LogAttrs(ctx, info.logLevel, "request error",
		logger.RequestID(requestid.FromContext(ctx)),
		logger.Error(err),
		logger.StatusCode(info.status),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		slog.Bool("operational", info.operational),
		slog.String("error_name", info.detail.Name),
		logger.Component("error_handler"),
	)
}
