package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/marchenry/bookworm-api/internal/api/shared"
	"github.com/marchenry/bookworm-api/internal/config"
	"github.com/marchenry/bookworm-api/internal/platform/memory"
	"github.com/marchenry/bookworm-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bcryptTestCost = 4

func newTestAuthHandler(t *testing.T) (*AuthHandler, *memory.AccountStore) {
	t.Helper()

	hasher := auth.NewBcryptHasher(bcryptTestCost)
	accountStore := memory.NewAccountStore(hasher)
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-secret-that-is-at-least-32-chars!!",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 60 * 24,
	})
	require.NoError(t, err)

	return NewAuthHandler(accountStore, jwtService, hasher), accountStore
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password123",
			},
			wantStatus: http.StatusCreated,
			wantToken:  true,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "invalid-email",
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"email":    "test2@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler, _ := newTestAuthHandler(t)
			w := postJSON(t, handler.Register, "/api/auth/register", tt.payload)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantToken {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.NotEmpty(t, resp.AccessToken)
				assert.NotEmpty(t, resp.RefreshToken)
				assert.NotEqual(t, uuid.Nil, resp.AccountID)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	handler, _ := newTestAuthHandler(t)
	payload := map[string]interface{}{
		"email":    "dup@example.com",
		"password": "password123",
	}

	w := postJSON(t, handler.Register, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, handler.Register, "/api/auth/register", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	handler, _ := newTestAuthHandler(t)
	registration := map[string]interface{}{
		"email":    "login@example.com",
		"password": "password123",
	}
	w := postJSON(t, handler.Register, "/api/auth/register", registration)
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name:       "valid credentials",
			payload:    registration,
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    "login@example.com",
				"password": "wrong-password",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			payload: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password123",
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler.Login, "/api/auth/login", tt.payload)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	handler, _ := newTestAuthHandler(t)
	w := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"email":    "refresh@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&registered))

	t.Run("valid refresh token", func(t *testing.T) {
		w := postJSON(t, handler.RefreshToken, "/api/auth/refresh", map[string]interface{}{
			"refresh_token": registered.RefreshToken,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp RefreshTokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		w := postJSON(t, handler.RefreshToken, "/api/auth/refresh", map[string]interface{}{
			"refresh_token": registered.AccessToken,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := postJSON(t, handler.RefreshToken, "/api/auth/refresh", map[string]interface{}{
			"refresh_token": "not-a-token",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMe(t *testing.T) {
	t.Parallel()

	handler, accountStore := newTestAuthHandler(t)
	w := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"email":    "me@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&registered))

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		ctx := context.WithValue(req.Context(), shared.AccountIDContextKey, registered.AccountID)
		w := httptest.NewRecorder()
		handler.Me(w, req.WithContext(ctx))

		require.Equal(t, http.StatusOK, w.Code)
		var resp MeResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, registered.AccountID, resp.AccountID)
		assert.Equal(t, "me@example.com", resp.Email)
	})

	t.Run("missing account in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		w := httptest.NewRecorder()
		handler.Me(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("deleted account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		require.NoError(t, accountStore.Delete(req.Context(), registered.AccountID))
		ctx := context.WithValue(req.Context(), shared.AccountIDContextKey, registered.AccountID)
		w := httptest.NewRecorder()
		handler.Me(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
