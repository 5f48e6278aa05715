package bodyparser

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/apistarter/core"
)

// ErrorHandler renders a parse failure. The error is always a *core.AppError.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Option configures a body parser middleware.
type Option func(*options)

type options struct {
	limit        int64
	errorHandler ErrorHandler
	verify       func(r *http.Request, body []byte) error
}

func newOptions(opts []Option) *options {
	o := &options{
		limit:        DefaultLimit,
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLimit sets the maximum body size in bytes.
func WithLimit(n int64) Option {
	if n <= 0 {
		panic("bodyparser.WithLimit: limit must be > 0")
	}
	return func(o *options) { o.limit = n }
}

// WithErrorHandler routes parse failures to h instead of the plain-text default.
func WithErrorHandler(h ErrorHandler) Option {
	if h == nil {
		panic("bodyparser.WithErrorHandler: nil handler")
	}
	return func(o *options) { o.errorHandler = h }
}

// WithVerify runs fn against the raw body before it is parsed. A non-nil
// error rejects the request with 403 entity.verify.failed.
func WithVerify(fn func(r *http.Request, body []byte) error) Option {
	if fn == nil {
		panic("bodyparser.WithVerify: nil func")
	}
	return func(o *options) { o.verify = fn }
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusBadRequest
	if appErr, ok := core.AsAppError(err); ok {
		status = appErr.StatusCode
	}
	if errors.Is(err, ErrBodyTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	http.Error(w, err.Error(), status)
}
