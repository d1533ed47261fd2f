package errors

import (
	"net/http"
	"strings"
)

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message,omitempty"`
}

// ValidationError carries the field-level failures of a typed form.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError builds a validation error from field failures.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details lists the failing fields.
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+":"+f.Rule)
	}

	return strings.Join(parts, ",")
}

// Fields returns the individual field failures.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// FieldErrors accumulates failures while a form is checked.
type FieldErrors []FieldError

// Add records a failure.
func (fe *FieldErrors) Add(field, rule, message string) {
	*fe = append(*fe, FieldError{Field: field, Rule: rule, Message: message})
}

// Err returns nil when no failure was recorded.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}

	return NewValidationError(fe...)
}
