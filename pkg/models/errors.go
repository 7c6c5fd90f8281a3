package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")

	// ErrBackendUnavailable is returned by every extraction when the NLP
	// backend could not be initialized at startup.
	ErrBackendUnavailable = errors.New("NLP backend not available")
	// ErrDatasetUnavailable is returned by every dataset operation when the
	// dataset failed to load at startup.
	ErrDatasetUnavailable = errors.New("dataset not loaded")
)

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// UnavailableError records why a startup collaborator is unavailable. It
// unwraps to the matching sentinel so handlers can use errors.Is.
type UnavailableError struct {
	Sentinel error
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause == nil {
		return e.Sentinel.Error()
	}
	return fmt.Sprintf("%s: %v", e.Sentinel, e.Cause)
}

func (e *UnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Sentinel}
	}
	return []error{e.Sentinel, e.Cause}
}

type startupFailure interface {
	StartupError() error
}

// StartupError returns why a collaborator failed to initialize, or nil if it
// is usable.
func StartupError(collaborator any) error {
	if f, ok := collaborator.(startupFailure); ok {
		return f.StartupError()
	}
	return nil
}
