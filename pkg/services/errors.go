package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition is returned when a status change is not allowed
	// by the event lifecycle
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned when authentication fails; it is
	// deliberately indistinguishable between unknown user and bad password
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotWaiting is returned when manually completing an execution that
	// is not waiting for a human
	ErrNotWaiting = errors.New("execution is not waiting for manual completion")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
