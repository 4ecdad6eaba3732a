package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned by Login for an unknown username or
	// a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("username or password wrong")

	// ErrUsernameTaken is returned by Register when the username exists.
	ErrUsernameTaken = errors.New("username already registered")
)

// ServiceError wraps an unexpected failure with the operation that hit it.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}
