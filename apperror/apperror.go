package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the HTTP status a failure should surface with.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code: the sentinels below name error kinds, so
// errors.Is(err, ErrNotFound) holds for every 404 and ErrInvalidCredentials
// is also an ErrUnauthorized. ErrInvalidCredentials itself only matches
// that exact value, so a plain 401 is never reported as a bad login.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t == ErrInvalidCredentials {
		return e == t
	}
	return t.Code == e.Code
}

var (
	ErrValidation  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Validation failed"}
	ErrNotFound    = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrPersistence = &AppError{Code: http.StatusBadGateway, Message: "Storage unavailable"}
	ErrBadRequest  = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}

	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
)

func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusUnprocessableEntity, Message: message}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found"}
}

// NewPersistenceError wraps a failed store call.
func NewPersistenceError(op string, err error) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: "failed to " + op, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// StatusCode returns the HTTP status for err, 500 for anything that is not an AppError.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
