package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// HTTPError is a domain error already translated into a client-facing status and message.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// NewHTTPError builds an HTTPError. Code mirrors the status unless overridden later.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "Forbidden")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)

// AsHTTPError reports whether err wraps an *HTTPError and returns it.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if stdErrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
