// Package errors provides structured error types for the factorbay library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across all inference packages
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention mirroring the failure
// taxonomy of the elimination core:
//   - PRECONDITION_*: malformed construction arguments (always detected synchronously)
//   - INVALID_STATE_*: operations against variables or handles that are not live
//   - ORACLE_*: an ordering oracle violated its totality contract
//
// # Usage
//
//	err := errors.New(errors.ErrCodePreconditionRange, "index %d out of range [0, %d)", v, n)
//	if errors.Is(err, errors.ErrCodePreconditionRange) {
//	    // Handle precondition violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOracleIncomplete, origErr, "ordering over %d variables", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Precondition violations: malformed Permutation construction arguments.
	ErrCodePreconditionDuplicate Code = "PRECONDITION_DUPLICATE"
	ErrCodePreconditionRange     Code = "PRECONDITION_RANGE"
	ErrCodePreconditionSize      Code = "PRECONDITION_SIZE"

	// Invalid state: referencing variables or factor handles that are not live.
	ErrCodeInvalidStateVariable Code = "INVALID_STATE_VARIABLE"
	ErrCodeInvalidStateHandle   Code = "INVALID_STATE_HANDLE"

	// Oracle failures: an ordering oracle returned a non-total ordering.
	// The oracle contract requires totality, so this indicates a collaborator
	// bug rather than a recoverable condition.
	ErrCodeOracleIncomplete Code = "ORACLE_INCOMPLETE"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsPrecondition reports whether err is any precondition violation.
// Precondition violations indicate malformed arguments detected before
// any state was mutated.
func IsPrecondition(err error) bool {
	switch GetCode(err) {
	case ErrCodePreconditionDuplicate, ErrCodePreconditionRange, ErrCodePreconditionSize:
		return true
	}
	return false
}

// IsInvalidState reports whether err is any invalid-state failure. After an
// invalid-state failure mid-run, the graph and index may be left partially
// consumed; callers requiring atomicity should discard a private copy.
func IsInvalidState(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidStateVariable, ErrCodeInvalidStateHandle:
		return true
	}
	return false
}
