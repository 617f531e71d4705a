package api

import (
	"github.com/google/uuid"
	"github.com/marchenry/bookworm-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the account registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the account login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// AccountID is the unique identifier for the authenticated account
	AccountID uuid.UUID `json:"account_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// MeResponse echoes the authenticated account's identity.
type MeResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Email     string    `json:"email"`
}

// AddGenreRequest defines the payload for adding a favorite genre.
type AddGenreRequest struct {
	Genre string `json:"genre" validate:"required,min=1"`
}

// AddRatingRequest defines the payload for rating a book. Rating bounds
// mirror the domain rating scale.
type AddRatingRequest struct {
	BookID string `json:"book_id" validate:"required,min=1"`
	Rating int    `json:"rating"  validate:"required,gte=1,lte=5"`
}

// BlockItemRequest defines the payload for blocking a book.
type BlockItemRequest struct {
	BookID string `json:"book_id" validate:"required,min=1"`
}

// ProfileResponse is the full profile view returned by the profile endpoints.
type ProfileResponse struct {
	UserID         string                 `json:"user_id"`
	FavoriteGenres []string               `json:"favorite_genres"`
	BlockedItems   []string               `json:"blocked_items"`
	ReadingHistory []domain.HistoryRecord `json:"reading_history"`
}

// NewProfileResponse builds the response view from the aggregate.
func NewProfileResponse(profile *domain.ReadingProfile) ProfileResponse {
	return ProfileResponse{
		UserID:         profile.UserID().String(),
		FavoriteGenres: profile.FavoriteGenreNames(),
		BlockedItems:   profile.BlockedItemIDs(),
		ReadingHistory: profile.ReadingHistory(),
	}
}
