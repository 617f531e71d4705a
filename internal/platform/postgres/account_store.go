package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/service/auth"
	"github.com/marchenry/bookworm-api/internal/store"
)

// AccountStore implements store.AccountStore using a PostgreSQL database.
type AccountStore struct {
	db     *sql.DB
	hasher auth.PasswordHasher
}

// Ensure AccountStore implements store.AccountStore.
var _ store.AccountStore = (*AccountStore)(nil)

// NewAccountStore creates a PostgreSQL implementation of the AccountStore
// interface. The hasher is used to hash plaintext passwords on Create.
func NewAccountStore(db *sql.DB, hasher auth.PasswordHasher) *AccountStore {
	return &AccountStore{db: db, hasher: hasher}
}

// Create implements store.AccountStore.Create.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return store.NewStoreError("account", "create", "invalid account", err)
	}

	if account.Password != "" {
		hashed, err := s.hasher.Hash(account.Password)
		if err != nil {
			return store.NewStoreError("account", "create", "failed to hash password", err)
		}
		account.HashedPassword = hashed
		account.Password = ""
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, hashed_password, created_at, updated_at)
		VALUES ($1, lower($2), $3, $4, $5)`,
		account.ID, account.Email, account.HashedPassword, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		return store.NewStoreError("account", "create", "failed to insert account", err)
	}
	return nil
}

// GetByID implements store.AccountStore.GetByID.
func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.get(ctx, `WHERE id = $1`, id)
}

// GetByEmail implements store.AccountStore.GetByEmail.
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.get(ctx, `WHERE email = lower($1)`, email)
}

func (s *AccountStore) get(ctx context.Context, where string, arg interface{}) (*domain.Account, error) {
	var account domain.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, hashed_password, created_at, updated_at
		FROM accounts `+where,
		arg).Scan(&account.ID, &account.Email, &account.HashedPassword,
		&account.CreatedAt, &account.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrAccountNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("account", "get", "failed to query account", err)
	}
	return &account, nil
}

// Delete implements store.AccountStore.Delete.
func (s *AccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return store.NewStoreError("account", "delete", "failed to delete account", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("account", "delete", "failed to read affected rows", err)
	}
	if affected == 0 {
		return store.ErrAccountNotFound
	}
	return nil
}
