package service

import (
	"errors"
	"fmt"

	"github.com/marchenry/bookworm-api/internal/store"
)

// Common sentinel errors for the profile service.
var (
	// ErrProfileNotFound indicates that no profile exists for the user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileExists indicates that a profile already exists for the
	// user. Profiles are created once per user.
	ErrProfileExists = errors.New("profile already exists")
)

// ProfileServiceError wraps errors from the profile service with context.
type ProfileServiceError struct {
	// Operation is the operation that failed (e.g., "create_profile").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for ProfileServiceError.
func (e *ProfileServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("profile service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProfileServiceError) Unwrap() error {
	return e.Err
}

// newProfileServiceError wraps err with operation context. Domain
// validation errors and the service sentinels pass through unwrapped so
// callers can match them; store-level absence is mapped to the service
// sentinel.
func newProfileServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrProfileNotFound) || errors.Is(err, ErrProfileExists) {
		return err
	}
	if errors.Is(err, store.ErrProfileNotFound) {
		return ErrProfileNotFound
	}
	if errors.Is(err, store.ErrProfileExists) {
		return ErrProfileExists
	}

	return &ProfileServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
