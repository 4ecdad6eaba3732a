package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every entity validation failure.
var ErrValidation = errors.New("validation failed")

// FieldError reports a problem with a single named field. Field uses the
// external (JSON) name so it can be surfaced to clients unchanged.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) match any FieldError.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// NewFieldError creates a FieldError.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// FieldErrors collects every FieldError in err's tree, including errors
// combined with errors.Join, keyed by field name.
func FieldErrors(err error) map[string][]string {
	out := make(map[string][]string)
	collectFieldErrors(err, out)
	return out
}

func collectFieldErrors(err error, out map[string][]string) {
	if err == nil {
		return
	}
	if fe, ok := err.(*FieldError); ok {
		out[fe.Field] = append(out[fe.Field], fe.Message)
		return
	}
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			collectFieldErrors(inner, out)
		}
	case interface{ Unwrap() error }:
		collectFieldErrors(e.Unwrap(), out)
	}
}

func requireText(field, value string, maxLen int) error {
	if value == "" {
		return NewFieldError(field, fmt.Sprintf("%s is required", field))
	}
	return maxLength(field, value, maxLen)
}

func maxLength(field, value string, maxLen int) error {
	if len([]rune(value)) > maxLen {
		return NewFieldError(field, fmt.Sprintf("%s must not exceed %d characters", field, maxLen))
	}
	return nil
}

func optionalMaxLength(field string, value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	return maxLength(field, *value, maxLen)
}
