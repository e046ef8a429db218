// Package errors provides error handling for Owlet.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel-based error classification
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.IsNotFound(err) {
//	    // handle missing entity
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors forming the Owlet error taxonomy.
// Use these with errors.Is() for type-safe error checking, or the Is*
// helpers below. The HTTP adapter maps each taxonomy member to a distinct
// response code.
var (
	// ErrNotFound indicates a referenced entity or id is absent.
	ErrNotFound = New("not found")

	// ErrValidation indicates a duplicate id, malformed input, or the
	// wrong entity kind for the requested operation.
	ErrValidation = New("validation failed")

	// ErrInvalidOperation indicates a structurally disallowed action,
	// such as deleting a class with dependents without force.
	ErrInvalidOperation = New("invalid operation")
)

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsValidation checks if an error is or wraps ErrValidation.
func IsValidation(err error) bool {
	return err != nil && Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is or wraps ErrInvalidOperation.
func IsInvalidOperation(err error) bool {
	return err != nil && Is(err, ErrInvalidOperation)
}

// NewNotFoundError creates a not-found error with a formatted message.
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewValidationError creates a validation error with a formatted message.
func NewValidationError(format string, args ...interface{}) error {
	return Wrap(ErrValidation, Newf(format, args...).Error())
}

// NewInvalidOperationError creates an invalid-operation error with a formatted message.
func NewInvalidOperationError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidOperation, Newf(format, args...).Error())
}
