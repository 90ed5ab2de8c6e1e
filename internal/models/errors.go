package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references a complaint or user
	// that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidStatus is returned for a transition target outside the
	// recognized status set. The record is left unchanged.
	ErrInvalidStatus = errors.New("invalid complaint status")
	// ErrUnknownCategory is returned for a category outside the closed
	// enumeration, before anything is persisted.
	ErrUnknownCategory = errors.New("unknown complaint category")
	// ErrValidation marks malformed input at creation time. Match with
	// errors.Is; the concrete *ValidationError carries the offending field.
	ErrValidation = errors.New("invalid complaint input")
)

// ValidationError describes a single malformed field in a submission, with
// enough detail for the caller to correct the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
