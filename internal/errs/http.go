package errs

import (
	"net/http"
)

// NotFoundMessage is the message of every missing-record response.
const NotFoundMessage = "not found"

// New creates an HTTPError whose code is derived from the status text.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code optionally overrides the default "BAD_REQUEST" and errors carries
// field-level validation failures.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	err := New(http.StatusBadRequest, message)

	if code != nil {
		err.Code = *code
	}
	err.Errors = errors

	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	err := New(http.StatusNotFound, message)

	if code != nil {
		err.Code = *code
	}

	return err
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError() *HTTPError {
	return New(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the internal error.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
