package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()

	account, err := NewAccount("reader@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.ID == uuid.Nil {
		t.Error("Expected non-nil UUID")
	}
	if account.CreatedAt.IsZero() || account.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	userID, err := account.ProfileUserID()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if userID.String() != account.ID.String() {
		t.Errorf("Expected profile user ID %s, got %s", account.ID, userID)
	}
}

func TestAccountValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "correct horse battery", ErrEmptyEmail},
		{"bad email", "not-an-email", "correct horse battery", ErrInvalidEmail},
		{"short password", "reader@example.com", "short", ErrPasswordTooShort},
		{
			"long password",
			"reader@example.com",
			string(make([]byte, MaxPasswordLength+1)),
			ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewAccount(tt.email, tt.password)
			if err != tt.wantErr {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	// Stored accounts carry only the hash.
	stored := &Account{ID: uuid.New(), Email: "reader@example.com", HashedPassword: "$2a$10$x"}
	if err := stored.Validate(); err != nil {
		t.Errorf("Expected stored account to validate, got %v", err)
	}

	// No plaintext and no hash is invalid.
	stored.HashedPassword = ""
	if err := stored.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected ErrEmptyPassword, got %v", err)
	}
}
