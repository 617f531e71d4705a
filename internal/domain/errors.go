package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyUserID is returned when a user ID is empty or all whitespace.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyGenreName is returned when a genre name is empty or all whitespace.
	ErrEmptyGenreName = errors.New("genre name cannot be empty")

	// ErrEmptyBookID is returned when a book ID is empty or all whitespace.
	ErrEmptyBookID = errors.New("book ID cannot be empty")

	// ErrRatingOutOfRange is returned when a rating value is not in [1,5].
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

	// ErrGenreLimitReached is returned when adding a genre beyond the
	// five-genre preference limit.
	ErrGenreLimitReached = errors.New("cannot add more than 5 favorite genres")

	// ErrDuplicateGenre is returned when adding a genre whose normalized
	// name is already present in the preferences.
	ErrDuplicateGenre = errors.New("genre already exists")

	// ErrBookBlocked is returned when rating a book that is on the block list.
	ErrBookBlocked = errors.New("cannot rate blocked book")

	// ErrBookActive is returned when blocking a book that currently holds
	// a rating.
	ErrBookActive = errors.New("cannot block active book")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a single failed precondition on a domain value.
// It carries the field that failed, a human-readable message, and wraps one
// of the sentinel errors above so callers can match with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped sentinel error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping the given
// sentinel error.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is (or wraps) a domain validation
// failure of any kind.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrValidation)
}
