package bodyparser

import (
	"fmt"
	"net/http"
	"net/url"
)

// URLEncoded returns a middleware that reads application/x-www-form-urlencoded
// bodies up to the configured limit and populates r.PostForm. Malformed
// bodies are rejected with 400 entity.parse.failed.
func URLEncoded(opts ...Option) func(http.Handler) http.Handler {
	return middleware(newOptions(opts), isURLEncoded, isUTF8Charset, parseForm)
}

func isURLEncoded(mediaType string) bool {
	return mediaType == "application/x-www-form-urlencoded"
}

func isUTF8Charset(charset string) bool {
	return charset == "utf-8"
}

func parseForm(r *http.Request, body []byte) (*http.Request, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	r.PostForm = values
	return r, nil
}
