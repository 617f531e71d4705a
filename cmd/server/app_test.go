package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marchenry/bookworm-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:     8080,
			LogLevel: "error",
		},
		Database: config.DatabaseConfig{
			Backend: "memory",
		},
		Auth: config.AuthConfig{
			JWTSecret:                   "test-secret-that-is-at-least-32-chars!!",
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 60 * 24,
		},
	}

	app, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app
}

func TestNewApplicationUnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Database: config.DatabaseConfig{Backend: "sqlite"},
	}
	_, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestRegisterAndManageProfile exercises the full flow through the real
// router: register an account, create a profile, record interests, and
// read the snapshot back.
func TestRegisterAndManageProfile(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	do := func(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
		var body io.Reader
		if payload != nil {
			raw, err := json.Marshal(payload)
			require.NoError(t, err)
			body = bytes.NewReader(raw)
		}
		req := httptest.NewRequest(method, path, body)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "reader@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered struct {
		AccountID   string `json:"account_id"`
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&registered))
	require.NotEmpty(t, registered.AccessToken)

	base := "/api/profiles/" + registered.AccountID

	w = do(http.MethodPost, base, registered.AccessToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(http.MethodPost, base+"/genres", registered.AccessToken,
		map[string]interface{}{"genre": "science fiction"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodPost, base+"/ratings", registered.AccessToken,
		map[string]interface{}{"book_id": "dune", "rating": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodGet, base+"/snapshot", registered.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot struct {
		FavoriteGenres []string `json:"favorite_genres"`
		BooksRead      int      `json:"books_read"`
		AverageRating  float64  `json:"average_rating"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&snapshot))
	assert.Equal(t, []string{"Science Fiction"}, snapshot.FavoriteGenres)
	assert.Equal(t, 1, snapshot.BooksRead)
	assert.InDelta(t, 5.0, snapshot.AverageRating, 0.001)

	// A second account cannot touch the first account's profile.
	w = do(http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "intruder@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var intruder struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&intruder))

	w = do(http.MethodGet, base, intruder.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
