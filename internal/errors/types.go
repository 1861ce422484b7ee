// Package errors turns non-success responses from the people service into
// ClientError values.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ClientError reports a non-success HTTP response. Message carries the
// server-provided reason verbatim when the body has one.
type ClientError struct {
	Operation  string
	StatusCode int
	Message    string
	Body       string // raw response body for debugging
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return fmt.Sprintf("%s: HTTP %d: %s", e.Operation, e.StatusCode, e.Message)
}

// IsStatus reports whether err is a ClientError with the given status code.
func IsStatus(err error, code int) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.StatusCode == code
	}
	return false
}

// IsNotFound is IsStatus(err, 404).
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }
