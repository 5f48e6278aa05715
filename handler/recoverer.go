package handler

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/apistarter/core"
)

// CodePanic marks errors created from recovered handler panics.
const CodePanic = "internal.panic"

// Recoverer converts a panic in a downstream handler into a non-operational
// 500 AppError carrying the panic stack and passes it to errorHandler, so the
// client receives the usual JSON body and the server keeps serving.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the response.
// If the handler already wrote a status line the error is still reported but
// the response is left as is.
func Recoverer(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		panic("handler.Recoverer: nil error handler")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(middleware.WrapResponseWriter)
			if !ok {
				ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err := PanicError(rec, string(debug.Stack()))
				if ww.Status() != 0 {
					errorHandler(discardWriter{header: make(http.Header)}, r, err)
					return
				}
				errorHandler(ww, r, err)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// PanicError wraps a recovered value into a non-operational AppError.
func PanicError(rec any, stack string) *core.AppError {
	cause, ok := rec.(error)
	if !ok {
		cause = fmt.Errorf("panic: %v", rec)
	}
	var appErr *core.AppError
	if errors.As(cause, &appErr) {
		return appErr
	}
	return core.NewAppError(http.StatusInternalServerError, cause.Error(),
		core.WithOperational(false),
		core.WithCode(CodePanic),
		core.WithStack(stack),
		core.WithCause(cause),
	)
}

// discardWriter swallows a second response so a failure after the status line
// is still logged by the error handler.
type discardWriter struct {
	header http.Header
}

func (d discardWriter) Header() http.Header         { return d.header }
func (d discardWriter) Write(b []byte) (int, error) { return len(b), nil }
func (d discardWriter) WriteHeader(int)             {}
