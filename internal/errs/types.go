package errs

import (
	"net/http"
	"strings"
)

// HTTPError is the main custom error type for API responses.
//
// It implements the error interface via Error() and is serialized
// directly to JSON. The wire shape is deliberately minimal: every
// error body the API produces is `{"message": "..."}`, so Status
// and Code are kept for internal routing/logging only.
type HTTPError struct {
	Code    string `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts a string into an
// UPPER_CASE_WITH_UNDERSCORES format, e.g. "Bad Request" -> "BAD_REQUEST".
// Used to create stable machine-readable codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

func newError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Status:  status,
		Message: message,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return newError(http.StatusBadRequest, message)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newError(http.StatusNotFound, message)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError
// carrying the underlying failure message. The API surfaces store errors
// to the client unredacted.
func NewInternalServerError(message string) *HTTPError {
	return newError(http.StatusInternalServerError, message)
}

// ValidationError converts a validation failure into a 400 Bad Request
// HTTPError with a "Validation failed: ..." message.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: " + err.Error())
}
