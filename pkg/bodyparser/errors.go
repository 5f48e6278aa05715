package bodyparser

import "errors"

var (
	ErrInvalidBody        = errors.New("invalid request body")
	ErrBodyTooLarge       = errors.New("request entity too large")
	ErrUnsupportedCharset = errors.New("unsupported charset")
	ErrReadBody           = errors.New("failed to read request body")
)

// Error codes attached to the AppError passed to the error handler.
const (
	CodeParseFailed        = "entity.parse.failed"
	CodeTooLarge           = "entity.too.large"
	CodeCharsetUnsupported = "charset.unsupported"
	CodeVerifyFailed       = "entity.verify.failed"
	CodeRequestAborted     = "request.aborted"
)
