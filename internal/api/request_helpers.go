package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/marchenry/bookworm-api/internal/api/shared"
	"github.com/marchenry/bookworm-api/internal/domain"
)

// Thin wrappers over the shared helpers so handlers stay terse.

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return shared.DecodeJSON(r, v)
}

// RespondWithJSON writes a JSON response with the given status and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	shared.RespondWithJSON(w, r, status, data)
}

// RespondWithError writes a JSON error response with the given status and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}

// getAccountIDFromContext extracts the authenticated account's UUID from the
// request context. The ID is placed there by the authentication middleware.
func getAccountIDFromContext(r *http.Request) (uuid.UUID, bool) {
	accountID, ok := r.Context().Value(shared.AccountIDContextKey).(uuid.UUID)
	if !ok || accountID == uuid.Nil {
		return uuid.Nil, false
	}
	return accountID, true
}

// requireProfileOwner extracts the userID path parameter and verifies that
// the authenticated account owns it. Profile user IDs are account UUIDs in
// string form. On failure it writes the error response and returns false.
func requireProfileOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	accountID, ok := getAccountIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Account ID not found in request context")
		return "", false
	}

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		HandleAPIError(w, r,
			domain.NewValidationError("userID", "is required", domain.ErrValidation), "")
		return "", false
	}

	if userID != accountID.String() {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return "", false
	}
	return userID, true
}
