package errs

import (
	"net/http"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewHTTPError creates an error for any status, with message shown to the
// client.
func NewHTTPError(status int, message string) *HTTPError {
	return newHTTPError(status, message)
}

// NewBadRequestError creates a 400 error. When errors is non-empty the
// response lists them under "errors" instead of the single message.
func NewBadRequestError(message string, errors []string) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message)
	e.Errors = errors
	return e
}

// NewUnauthorizedError creates a 401 error.
func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError creates a 429 error.
func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
}

// NewInternalServerError creates a 500 error with the generic status text.
//
// Callers that want a resource-specific message use WithMessage, e.g.
//
//	errs.NewInternalServerError().WithMessage("Failed to fetch users").WithCause(err)
//
// The message must never contain the cause's text.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ValidationError converts a batch of validation messages into a 400.
func ValidationError(messages []string) *HTTPError {
	return NewBadRequestError("Validation failed", messages)
}
