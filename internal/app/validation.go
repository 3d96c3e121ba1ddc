package app

import "fmt"

// ValidationError reports a contract violation in caller-supplied input.
// The analytics core assumes validated input, so services fail fast with
// this error instead of letting bad data reach a computation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
