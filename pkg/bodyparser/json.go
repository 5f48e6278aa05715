package bodyparser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// JSON returns a middleware that reads application/json (and +json) bodies up
// to the configured limit and rejects malformed documents with 400
// entity.parse.failed. Only objects and arrays are accepted at the top level.
// An empty body is passed through. On success the raw document is available
// via RawBody and r.Body is restored for downstream decoding.
func JSON(opts ...Option) func(http.Handler) http.Handler {
	return middleware(newOptions(opts), isJSON, isUnicodeCharset, parseJSON)
}

func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func isUnicodeCharset(charset string) bool {
	return strings.HasPrefix(charset, "utf-")
}

func parseJSON(r *http.Request, body []byte) (*http.Request, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return r, nil
	}
	if first := trimmed[0]; first != '{' && first != '[' {
		return r, fmt.Errorf("%w: unexpected token %q in JSON at position 0", ErrInvalidBody, first)
	}

	var doc json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return r, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return r, nil
}
