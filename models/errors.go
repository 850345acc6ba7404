package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a record id that does not
// exist in the store. Controllers map it to 404.
var ErrNotFound = errors.New("record not found")

// ErrSubmissionInFlight guards against double-submitting the same session's
// cart while an earlier attempt is still persisting.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// ValidationError reports a missing or malformed required field. It is always
// resolved before any store call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a failed store write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// FetchError wraps a failed store read.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
