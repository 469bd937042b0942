// Package shared contains common domain types and errors used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Contract errors
	ErrMissingArgument     = errors.New("required argument is missing")
	ErrImmutableCollection = errors.New("collection is read-only")

	// Validation errors
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidRelation = errors.New("invalid relation between fields")

	// Record book errors
	ErrNotFound        = errors.New("entry not found")
	ErrAlreadyExists   = errors.New("entry already exists")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "calendar", "roster"
	Op      string // Operation that failed, e.g., "New", "Add"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsValidation checks if the error is a user-recoverable input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidFormat) || errors.Is(err, ErrInvalidRelation)
}

// IsContractViolation checks if the error is a programming-contract violation
// rather than a user input error.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrMissingArgument) || errors.Is(err, ErrImmutableCollection)
}
