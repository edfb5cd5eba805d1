package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels shared across layers. Repositories translate driver errors into
// these; the HTTP layer maps them onto status codes.
var (
	// JWT and tokens
	ErrInvalidSigningMethod = errors.New("invalid token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")

	// Authentication / authorization
	ErrEmptyAuthHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthHeader = errors.New("authorization header has invalid format")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("insufficient role for this action")
	ErrUserDeactivated   = errors.New("account is deactivated")

	// Context
	ErrUserIDNotFoundInContext = errors.New("user id not found in request context")

	// Common
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

// HttpError carries an HTTP status plus a user-facing message. The wrapped
// error and details stay server-side; ErrorResponse decides what leaks out.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}

// NewValidationError is the 400 shorthand used for business-rule rejections
// (uniqueness conflicts, invalid references, signup rule violations).
func NewValidationError(format string, args ...interface{}) *HttpError {
	return NewHttpError(http.StatusBadRequest, fmt.Sprintf(format, args...), nil, nil)
}

func NewNotFoundError(what string) *HttpError {
	return NewHttpError(http.StatusNotFound, fmt.Sprintf("%s not found", what), ErrNotFound, nil)
}
