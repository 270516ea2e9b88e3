// Package apperrors defines the sentinel errors the service layer returns
// and the middleware maps to HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
)

// Authentication and session errors.
var (
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrAccountPendingActivation  = errors.New("account pending activation")
	ErrAuthenticationRequired    = errors.New("authentication required")
	ErrInvalidToken              = errors.New("invalid or expired token")
	ErrSessionRevoked            = errors.New("session has been revoked")
)

// Authorization errors.
var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNoOfficerProfile   = errors.New("no officer profile for this account")
	ErrRankNotAuthorized  = errors.New("rank not authorized for this action")
	ErrTargetRankTooHigh  = errors.New("cannot act on an officer of this rank")
)

// Resource errors.
var (
	ErrOfficerNotFound  = errors.New("officer not found")
	ErrCriminalNotFound = errors.New("criminal not found")
	ErrCrimeNotFound    = errors.New("crime not found")
	ErrEvidenceNotFound = errors.New("evidence not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrResourceNotFound = errors.New("resource not found")
)

// Conflict errors.
var (
	ErrUsernameExists        = errors.New("username already exists")
	ErrBadgeNumberExists     = errors.New("badge number already exists")
	ErrFingerprintCodeExists = errors.New("fingerprint code already exists")
	ErrDNAProfileExists      = errors.New("dna profile already exists")
	ErrResourceAlreadyExists = errors.New("resource already exists")
)

// Validation and infrastructure errors.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrDatabaseError    = errors.New("database error")
	ErrFileStorage      = errors.New("file storage error")
)

// CustomError pairs a sentinel with a human-facing message so handlers can
// surface context while middleware still matches with errors.Is.
type CustomError struct {
	Base    error
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Base
}

// New wraps a sentinel error with a specific message.
func New(base error, message string) *CustomError {
	return &CustomError{Base: base, Message: message}
}

// Newf wraps a sentinel error with a formatted message.
func Newf(base error, format string, args ...interface{}) *CustomError {
	return &CustomError{Base: base, Message: fmt.Sprintf(format, args...)}
}
