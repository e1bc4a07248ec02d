// Package apperr defines the error kinds the service layer surfaces:
// validation failures, missing entities, delete conflicts and store failures.
// Handlers map each kind to an HTTP status; nothing below the handler layer
// swallows or downgrades them.
package apperr

import (
	"errors"
	"fmt"
)

const notFoundTemplate = "Entity: %s was not found"

// NotFoundError reports that an entity id or email did not resolve.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(notFoundTemplate, e.Identifier)
}

// NotFound builds a NotFoundError for the given identifier.
func NotFound(identifier string) error {
	return &NotFoundError{Identifier: identifier}
}

// ValidationError reports a malformed or missing required field, caught
// before anything reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation builds a ValidationError for the given field.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports an operation rejected because of dependent state,
// e.g. deleting a user that still has todos assigned.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict builds a ConflictError with the given message.
func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// StoreError wraps an underlying persistence failure. It is fatal for the
// current request and never retried by this layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError for the given operation.
func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
