package apperrors

import "fmt"

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError reports that no record exists for the given key.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConflictError reports a uniqueness violation, e.g. two submissions
// racing on the same (mockIdRef, userEmail) pair.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func Conflict(msg string) error {
	return &ConflictError{Message: msg}
}

// StorageError wraps an unclassified persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
