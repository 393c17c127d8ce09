// Package domain defines error types for the house factory.
package domain

import (
	"errors"
	"fmt"
)

// InvalidReferenceError is returned when an operation receives a nil creator
type InvalidReferenceError struct {
	Operation string
}

// Error implements the error interface for InvalidReferenceError
func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference: operation=%s requires a non-nil creator", e.Operation)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidReferenceError) Is(target error) bool {
	_, ok := target.(*InvalidReferenceError)
	return ok
}

// UnknownKindError is returned when no creator is registered for a kind
type UnknownKindError struct {
	Kind string
}

// Error implements the error interface for UnknownKindError
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown house kind: %q", e.Kind)
}

// Is allows proper error type checking with errors.Is()
func (e *UnknownKindError) Is(target error) bool {
	_, ok := target.(*UnknownKindError)
	return ok
}

// NewInvalidReferenceError creates a new InvalidReferenceError
func NewInvalidReferenceError(operation string) error {
	return &InvalidReferenceError{Operation: operation}
}

// NewUnknownKindError creates a new UnknownKindError
func NewUnknownKindError(kind string) error {
	return &UnknownKindError{Kind: kind}
}

// IsInvalidReferenceError checks if an error is an InvalidReferenceError
func IsInvalidReferenceError(err error) bool {
	var ire *InvalidReferenceError
	return errors.As(err, &ire)
}

// IsUnknownKindError checks if an error is an UnknownKindError
func IsUnknownKindError(err error) bool {
	var uke *UnknownKindError
	return errors.As(err, &uke)
}
