package core

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// ValidationErrors represents field validation errors.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationErrors url.Values

// NewValidationErrors creates an empty collection.
func NewValidationErrors() ValidationErrors {
	return make(ValidationErrors)
}

// Error implements the error interface with a stable, field-sorted summary.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// StatusCode reports 422 for a bare validation failure.
func (e ValidationErrors) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// Add appends a message for field.
func (e ValidationErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether field has any messages.
func (e ValidationErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether there are no messages at all.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}
