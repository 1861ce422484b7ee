package errors

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 64 << 10

// errorKeys are tried in order when pulling a reason out of a JSON body.
var errorKeys = []string{"error", "message"}

// FromResponse drains resp.Body and builds a ClientError for operation.
// The caller still owns closing the body.
func FromResponse(operation string, resp *http.Response) *ClientError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return NewHTTPError(operation, resp.StatusCode, body)
}

// NewHTTPError builds a ClientError from a status code and raw body.
func NewHTTPError(operation string, statusCode int, body []byte) *ClientError {
	return &ClientError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    ExtractMessage(statusCode, body),
		Body:       string(body),
	}
}

// ExtractMessage returns the body's "error" (or "message") field when the body
// is a JSON object carrying one, the trimmed body when it is not JSON, and the
// status text when the body is empty.
func ExtractMessage(statusCode int, body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			for _, k := range errorKeys {
				raw, ok := obj[k]
				if !ok {
					continue
				}
				var s string
				if err := json.Unmarshal(raw, &s); err == nil {
					return s
				}
				return string(raw)
			}
		}
	}
	if s := strings.TrimSpace(string(trimmed)); s != "" && s != "{}" {
		return s
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "unexpected status"
}
