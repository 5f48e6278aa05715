package bodyparser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/apistarter/core"
)

// parseFunc validates a body that was read in full. It returns a wrapped
// ErrInvalidBody for malformed content.
type parseFunc func(r *http.Request, body []byte) (*http.Request, error)

// matchFunc reports whether the parser handles the given media type.
type matchFunc func(mediaType string) bool

// charsetFunc reports whether the charset parameter is acceptable.
type charsetFunc func(charset string) bool

func middleware(o *options, match matchFunc, charsetOK charsetFunc, parse parseFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasBody(r) {
				next.ServeHTTP(w, r)
				return
			}
			mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || !match(mediaType) {
				next.ServeHTTP(w, r)
				return
			}

			if charset := strings.ToLower(params["charset"]); charset != "" && !charsetOK(charset) {
				o.errorHandler(w, r, core.NewAppError(http.StatusUnsupportedMediaType,
					fmt.Sprintf("unsupported charset %q", strings.ToUpper(charset)),
					core.WithCode(CodeCharsetUnsupported),
					core.WithCause(ErrUnsupportedCharset),
				))
				return
			}

			body, err := readLimited(r, o.limit)
			if err != nil {
				o.errorHandler(w, r, readError(err, o.limit))
				return
			}

			if o.verify != nil {
				if err := o.verify(r, body); err != nil {
					o.errorHandler(w, r, core.Forbidden(err.Error(),
						core.WithCode(CodeVerifyFailed),
						core.WithCause(err),
					))
					return
				}
			}

			r, err = parse(r, body)
			if err != nil {
				o.errorHandler(w, r, core.BadRequest(err.Error(),
					core.WithCode(CodeParseFailed),
					core.WithCause(err),
				))
				return
			}

			r = r.WithContext(WithRawBody(r.Context(), body))
			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			next.ServeHTTP(w, r)
		})
	}
}

// hasBody mirrors the "has a body" check: a positive Content-Length or chunked encoding.
func hasBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	return r.ContentLength > 0 || r.ContentLength == -1 || len(r.TransferEncoding) > 0
}

func readLimited(r *http.Request, limit int64) ([]byte, error) {
	if r.ContentLength > limit {
		return nil, ErrBodyTooLarge
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, errors.Join(ErrReadBody, err)
	}
	if int64(len(body)) > limit {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

func readError(err error, limit int64) *core.AppError {
	if errors.Is(err, ErrBodyTooLarge) {
		return core.NewAppError(http.StatusRequestEntityTooLarge, "request entity too large",
			core.WithCode(CodeTooLarge),
			core.WithCause(fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, limit)),
		)
	}
	return core.BadRequest("request aborted",
		core.WithCode(CodeRequestAborted),
		core.WithCause(err),
	)
}
