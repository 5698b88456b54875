// Package common defines shared constants and sentinel errors used across
// the gophauth server and client. Callers should use errors.Is to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors. ValidationError wraps one of these.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidCode       = errors.New("invalid verification code")

	// Verification code errors.
	ErrExpiredCode = errors.New("expired verification code")
	ErrWrongCode   = errors.New("wrong verification code")

	// Account errors.
	ErrDuplicateIdentifier = errors.New("user with same identifier already exists")
	ErrWrongCredentials    = errors.New("wrong credentials")

	// Collaborator failures.
	ErrTransport = errors.New("transport error")
	ErrStore     = errors.New("store error")
)

// ValidationError reports which request field failed a syntactic check.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("argument '%s' is incorrect", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError for field that matches kind
// under errors.Is.
func NewValidationError(field string, kind error) *ValidationError {
	return &ValidationError{Field: field, Err: kind}
}

// IsClientError reports whether err is caused by the caller's input and
// should be answered with a client-fault status. Store failures and unknown
// errors are server faults.
func IsClientError(err error) bool {
	switch {
	case errors.Is(err, ErrStore):
		return false
	case errors.Is(err, ErrInvalidIdentifier),
		errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrInvalidCode),
		errors.Is(err, ErrExpiredCode),
		errors.Is(err, ErrWrongCode),
		errors.Is(err, ErrDuplicateIdentifier),
		errors.Is(err, ErrWrongCredentials),
		errors.Is(err, ErrTransport):
		return true
	}
	return false
}
