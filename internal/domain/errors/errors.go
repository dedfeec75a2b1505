package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoCredentials      = errors.New("no credentials")
)

// Reasons carried in the error payload so clients can tell apart failures
// that share a status code (e.g. both authentication failures are 401).
const (
	ReasonNoCredentials      = "no_credentials"
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonForbidden          = "forbidden"
	ReasonNotFound           = "not_found"
	ReasonConflict           = "conflict"
	ReasonInvalidInput       = "invalid_input"
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, reason, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Reason:  reason,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, ReasonNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, ReasonInvalidInput, message, ErrInvalidInput)
}

// Conflict signals a unique-constraint violation (e.g. duplicate slug).
// Served as 400, matching the public contract of the clubs API.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusBadRequest, ReasonConflict, message, ErrConflict)
}

// NoCredentials is the authentication failure for a missing bearer token.
func NoCredentials() *AppError {
	return NewAppError(http.StatusUnauthorized, ReasonNoCredentials, "no credentials provided", ErrNoCredentials)
}

// InvalidCredentials is the authentication failure for a token the
// identity gateway rejected.
func InvalidCredentials() *AppError {
	return NewAppError(http.StatusUnauthorized, ReasonInvalidCredentials, "could not validate credentials", ErrInvalidCredentials)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, ReasonForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "", "internal server error", err)
}
