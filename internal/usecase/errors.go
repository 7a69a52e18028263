package usecase

import (
	"errors"
	"fmt"

	"hiko_buyforme/internal/domain/entities"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrRequestNotFound    = errors.New("buy-for-me request not found")
	ErrStorage            = errors.New("storage failure")
	ErrAdapterUnavailable = errors.New("price verification unavailable")
)

// ValidationError names the input field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidTransitionError is returned when the current status does not allow
// the attempted one. The request is left unmodified.
type InvalidTransitionError struct {
	From entities.RequestStatus
	To   entities.RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move request from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("buy-for-me request %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrRequestNotFound }

// StorageError wraps a repository failure. Nothing was committed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func (e *StorageError) Unwrap() error { return e.Err }

// AdapterUnavailableError is carried on degraded price assessments; it never
// fails a lifecycle operation.
type AdapterUnavailableError struct {
	URL string
	Err error
}

func (e *AdapterUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("price verification unavailable for %s", e.URL)
	}
	return fmt.Sprintf("price verification unavailable for %s: %v", e.URL, e.Err)
}

func (e *AdapterUnavailableError) Is(target error) bool { return target == ErrAdapterUnavailable }

func (e *AdapterUnavailableError) Unwrap() error { return e.Err }
