package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/service/auth"
	"github.com/marchenry/bookworm-api/internal/store"
)

// AccountStore is an in-memory implementation of store.AccountStore.
// Emails are matched case-insensitively.
type AccountStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]domain.Account
	byEmail map[string]uuid.UUID
	hasher  auth.PasswordHasher
}

// Ensure AccountStore implements store.AccountStore.
var _ store.AccountStore = (*AccountStore)(nil)

// NewAccountStore creates an empty in-memory account store. The hasher is
// used to hash plaintext passwords on Create.
func NewAccountStore(hasher auth.PasswordHasher) *AccountStore {
	return &AccountStore{
		byID:    map[uuid.UUID]domain.Account{},
		byEmail: map[string]uuid.UUID{},
		hasher:  hasher,
	}
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

	key := emailKey(account.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[key]; exists {
		return store.ErrEmailExists
	}
	s.byID[account.ID] = *account
	s.byEmail[key] = account.ID
	return nil
}

// GetByID implements store.AccountStore.GetByID.
func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return &account, nil
}

// GetByEmail implements store.AccountStore.GetByEmail.
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[emailKey(email)]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	account := s.byID[id]
	return &account, nil
}

// Delete implements store.AccountStore.Delete.
func (s *AccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.byID[id]
	if !ok {
		return store.ErrAccountNotFound
	}
	delete(s.byID, id)
	delete(s.byEmail, emailKey(account.Email))
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
