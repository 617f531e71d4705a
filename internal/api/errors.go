package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/marchenry/bookworm-api/internal/api/shared"
	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/service"
	"github.com/marchenry/bookworm-api/internal/service/auth"
	"github.com/marchenry/bookworm-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, store.ErrProfileNotFound),
		errors.Is(err, store.ErrAccountNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrProfileExists),
		errors.Is(err, store.ErrProfileExists),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, domain.ErrDuplicateGenre),
		errors.Is(err, domain.ErrGenreLimitReached),
		errors.Is(err, domain.ErrBookBlocked),
		errors.Is(err, domain.ErrBookActive):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyUserID),
		errors.Is(err, domain.ErrEmptyGenreName),
		errors.Is(err, domain.ErrEmptyBookID),
		errors.Is(err, domain.ErrRatingOutOfRange),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	// Authorization errors
	case errors.Is(err, domain.ErrUnauthorized):
		return "You do not have access to this profile"

	// Not found errors
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"

	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	// Conflict errors
	case errors.Is(err, service.ErrProfileExists),
		errors.Is(err, store.ErrProfileExists):
		return "Profile already exists"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, domain.ErrDuplicateGenre):
		return "Genre is already a favorite"

	case errors.Is(err, domain.ErrGenreLimitReached):
		return "Favorite genre limit reached"

	case errors.Is(err, domain.ErrBookBlocked):
		return "Book is blocked and cannot be rated"

	case errors.Is(err, domain.ErrBookActive):
		return "Book has a rating and cannot be blocked"

	// Bad request errors
	case errors.Is(err, domain.ErrRatingOutOfRange):
		return fmt.Sprintf("Rating must be between %d and %d", domain.MinRating, domain.MaxRating)

	case errors.Is(err, domain.ErrEmptyGenreName):
		return "Genre name must not be empty"

	case errors.Is(err, domain.ErrEmptyBookID):
		return "Book ID must not be empty"

	case errors.Is(err, domain.ErrEmptyUserID):
		return "User ID must not be empty"

	case domain.IsValidationError(err):
		return "Invalid request data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes an error response derived from the error type. When
// overrideMessage is non-empty it replaces the mapped safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns a validator.Struct error into a
// user-friendly message without exposing internal type names.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()
	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "value too short or too small"
	case "max":
		return "value too long or too large"
	case "gte":
		return "value below minimum"
	case "lte":
		return "value above maximum"
	default:
		return "invalid value"
	}
}
