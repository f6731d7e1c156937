package errs

import "strings"

// Response is the JSON body written for every failed request.
//
// Single-cause failures fill Error:
//
//	{ "error": "User not found" }
//
// Batch validation failures fill Errors:
//
//	{ "errors": ["user_id is required", "event_name must be at least 3 characters"] }
type Response struct {
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// HTTPError is the error type handlers and services return when they know
// which HTTP outcome a failure maps to.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), used for logs.
//   - Message: human-friendly message sent to the client.
//   - Status: HTTP status code.
//   - Errors: batch validation messages; when set, the body uses "errors".
//
// The cause is never serialized. It is kept so the global error handler can log
// what really went wrong without leaking it to the caller.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Errors  []string

	cause error
}

// Error makes *HTTPError satisfy the error interface. It returns the client
// message, not the cause.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the hidden cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Cause returns the underlying error, if any.
func (e *HTTPError) Cause() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError. It does not compare
// status or code.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
		cause:   e.cause,
	}
}

// WithCause returns a copy of this HTTPError carrying err as its cause.
func (e *HTTPError) WithCause(err error) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.Status,
		Errors:  e.Errors,
		cause:   err,
	}
}

// Response builds the client-facing body. Batch errors win over the single
// message so the client always sees one shape per failure kind.
func (e *HTTPError) Response() Response {
	if len(e.Errors) > 0 {
		return Response{Errors: e.Errors}
	}
	return Response{Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
