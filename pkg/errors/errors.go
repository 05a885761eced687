// Package errors provides custom error types for the cutplan system.
// These errors enable programmatic error checking at the contract
// boundaries (merge plans, catalog loading) while the reconciliation
// detectors themselves never fail on non-matching input.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the cutplan system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMergePlan indicates a merge plan that violates the
	// quantity-sum invariant or references unknown parts
	ErrInvalidMergePlan = errors.New("invalid merge plan")

	// ErrReadOnly indicates an attempt to modify a read-only resource
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// MergePlanError represents a merge plan that violates its contract,
// such as a survivor quantity that does not equal the group sum.
type MergePlanError struct {
	SurvivorID string
	Message    string
	Err        error
}

// Error implements the error interface
func (e *MergePlanError) Error() string {
	if e.SurvivorID != "" {
		return fmt.Sprintf("merge plan for part %s: %s", e.SurvivorID, e.Message)
	}
	return fmt.Sprintf("merge plan: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *MergePlanError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MergePlanError) Is(target error) bool {
	return target == ErrInvalidMergePlan || target == ErrInvalidInput
}

// NewMergePlanError creates a new MergePlanError
func NewMergePlanError(survivorID, message string) *MergePlanError {
	return &MergePlanError{SurvivorID: survivorID, Message: message, Err: ErrInvalidMergePlan}
}

// IOError represents a file system or serialization error
type IOError struct {
	Operation string // e.g., "read", "write", "decode"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// WrapIO wraps an I/O error with operation context
func WrapIO(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Is is a convenience re-export of the standard library errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience re-export of the standard library errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
