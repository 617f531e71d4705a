package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/marchenry/bookworm-api/internal/domain"
)

// AccountStore defines the persistence contract for registered accounts.
type AccountStore interface {
	// Create saves a new account. The implementation hashes the plaintext
	// password before storage.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	// The returned account never carries a plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByEmail retrieves an account by its email address.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// Delete removes an account by its ID.
	// Returns ErrAccountNotFound if the account does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
