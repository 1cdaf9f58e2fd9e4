package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrTaskNotFound indicates that no task matched the given ID.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError wraps every failure reported while talking to the backing
// store: connectivity, constraint violations, malformed statements.
// Message carries the driver's own text so it can be surfaced to clients.
type StoreError struct {
	Operation string // The pool operation that failed (e.g., "select", "exec")
	Code      string // Driver-specific classification, empty if unknown
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed (%s): %v", e.Operation, e.Code, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Message returns the underlying driver message.
func (e *StoreError) Message() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// NewStoreError creates a new StoreError for the given operation.
func NewStoreError(operation, code string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Code:      code,
		Err:       err,
	}
}

// IsStoreError reports whether err is or wraps a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
