package models

import (
	"errors"
	"fmt"
)

// ValidationError rejects a command whose input or current data fails a
// business precondition. The command writes nothing; the reason is meant to
// be surfaced to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with a formatted reason
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError is the ValidationError subtype for unknown ids
type NotFoundError struct {
	ValidationError
	Entity string
	ID     string
}

// NewNotFoundError creates a NotFoundError for the given entity kind and id
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		ValidationError: ValidationError{Reason: fmt.Sprintf("%s %s not found", entity, id)},
		Entity:          entity,
		ID:              id,
	}
}

// StateError rejects a transition requested from an invalid current state.
// It indicates the caller is out of sync and should refresh.
type StateError struct {
	Expected string
	Actual   string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state: expected %s, got %s", e.Expected, e.Actual)
}

// NewStateError creates a StateError
func NewStateError(expected, actual string) *StateError {
	return &StateError{Expected: expected, Actual: actual}
}

// IsValidation reports whether err is a ValidationError (including NotFound)
func IsValidation(err error) bool {
	var ve *ValidationError
	var nf *NotFoundError
	return errors.As(err, &ve) || errors.As(err, &nf)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsStateError reports whether err is a StateError
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}
