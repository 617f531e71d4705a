package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/service/auth"
	"github.com/marchenry/bookworm-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	accountStore     store.AccountStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	accountStore store.AccountStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		accountStore:     accountStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// issueTokenPair generates an access and refresh token for the account.
func (h *AuthHandler) issueTokenPair(
	ctx context.Context,
	accountID uuid.UUID,
) (access, refresh, expiresAt string, err error) {
	access, err = h.jwtService.GenerateToken(ctx, accountID)
	if err != nil {
		return "", "", "", err
	}
	refresh, err = h.jwtService.GenerateRefreshToken(ctx, accountID)
	if err != nil {
		return "", "", "", err
	}
	expiry := time.Now().UTC().Add(h.jwtService.AccessTokenLifetime())
	return access, refresh, expiry.Format(time.RFC3339), nil
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := domain.NewAccount(req.Email, req.Password)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid account data: "+err.Error())
		return
	}

	if err := h.accountStore.Create(r.Context(), account); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			RespondWithError(w, r, http.StatusConflict, "Email already exists")
			return
		}
		slog.Error("failed to create account", "error", err, "email", req.Email)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create account")
		return
	}

	access, refresh, expiresAt, err := h.issueTokenPair(r.Context(), account.ID)
	if err != nil {
		slog.Error("failed to generate tokens", "error", err, "account_id", account.ID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		AccountID:    account.ID,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	})
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get account by email", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate account")
		return
	}

	if err := h.passwordVerifier.Compare(account.HashedPassword, req.Password); err != nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	access, refresh, expiresAt, err := h.issueTokenPair(r.Context(), account.ID)
	if err != nil {
		slog.Error("failed to generate tokens", "error", err, "account_id", account.ID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		AccountID:    account.ID,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	})
}

// RefreshToken handles the /auth/refresh endpoint. It validates the refresh
// token and rotates the token pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Reject tokens for accounts that no longer exist.
	if _, err := h.accountStore.GetByID(r.Context(), claims.AccountID); err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		slog.Error("failed to get account", "error", err, "account_id", claims.AccountID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	access, refresh, expiresAt, err := h.issueTokenPair(r.Context(), claims.AccountID)
	if err != nil {
		slog.Error("failed to rotate tokens", "error", err, "account_id", claims.AccountID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	})
}

// Me handles the /auth/me endpoint, returning the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := getAccountIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Account ID not found in request context")
		return
	}

	account, err := h.accountStore.GetByID(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MeResponse{
		AccountID: account.ID,
		Email:     account.Email,
	})
}
