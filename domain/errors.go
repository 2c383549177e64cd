package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Persistence errors translated from the storage layer
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("unique constraint violation")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// ErrorKind classifies an application error
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindAuthorization  ErrorKind = "authorization"
	KindNotFound       ErrorKind = "not_found"
	KindConflict       ErrorKind = "conflict"
	KindRateLimit      ErrorKind = "rate_limit"
	KindInternal       ErrorKind = "internal"
)

// Error codes carried in the response envelope
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeAuthorization  = "AUTHORIZATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeRateLimit      = "RATE_LIMIT_EXCEEDED"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError is an error with a stable code and HTTP status
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Status  int
	Details interface{}
	Err     error
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

// WithDetails attaches structured detail to the error
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// NewValidationError reports a malformed or incomplete request
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

// NewAuthenticationError reports missing or rejected credentials
func NewAuthenticationError(message string) *AppError {
	if message == "" {
		message = "Authentication failed"
	}
	return &AppError{Kind: KindAuthentication, Code: CodeAuthentication, Message: message, Status: http.StatusUnauthorized}
}

// NewAuthorizationError reports an authenticated caller lacking permission
func NewAuthorizationError(message string) *AppError {
	if message == "" {
		message = "Access denied"
	}
	return &AppError{Kind: KindAuthorization, Code: CodeAuthorization, Message: message, Status: http.StatusForbidden}
}

// NewNotFoundError reports a missing resource as "<resource> not found"
func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Code: CodeNotFound, Message: resource + " not found", Status: http.StatusNotFound}
}

// NewConflictError reports a uniqueness violation
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Code: CodeConflict, Message: message, Status: http.StatusConflict}
}

// NewRateLimitError reports too many requests
func NewRateLimitError(message string) *AppError {
	if message == "" {
		message = "Too many requests"
	}
	return &AppError{Kind: KindRateLimit, Code: CodeRateLimit, Message: message, Status: http.StatusTooManyRequests}
}

// NewInternalError wraps an unexpected failure
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return &AppError{Kind: KindInternal, Code: CodeInternal, Message: message, Status: http.StatusInternalServerError, Err: err}
}

// AsAppError converts any error into an AppError. Storage sentinels become
// NotFound/Conflict; anything unrecognized becomes Internal carrying its message.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrRecordNotFound):
		return NewNotFoundError("Record")
	case errors.Is(err, ErrDuplicateKey):
		return NewConflictError("Unique constraint violation")
	}

	return &AppError{Kind: KindInternal, Code: CodeInternal, Message: err.Error(), Status: http.StatusInternalServerError, Err: err}
}
