package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/service/auth"
	"github.com/marchenry/bookworm-api/internal/store"
)

// Low cost keeps the bcrypt tests fast.
const bcryptTestCost = 4

func newAccountStore() *AccountStore {
	return NewAccountStore(auth.NewBcryptHasher(bcryptTestCost))
}

func TestAccountStoreCreateHashesPassword(t *testing.T) {
	t.Parallel()

	s := newAccountStore()
	ctx := context.Background()

	account, err := domain.NewAccount("reader@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, account))

	assert.Empty(t, account.Password)
	assert.NotEmpty(t, account.HashedPassword)

	verifier := auth.NewBcryptHasher(bcryptTestCost)
	assert.NoError(t, verifier.Compare(account.HashedPassword, "correct horse battery"))
}

func TestAccountStoreDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := newAccountStore()
	ctx := context.Background()

	first, err := domain.NewAccount("reader@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, first))

	// Email matching is case-insensitive.
	second, err := domain.NewAccount("Reader@Example.com", "another password!")
	require.NoError(t, err)
	err = s.Create(ctx, second)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestAccountStoreLookups(t *testing.T) {
	t.Parallel()

	s := newAccountStore()
	ctx := context.Background()

	account, err := domain.NewAccount("reader@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, account))

	byID, err := s.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.Email, byID.Email)

	byEmail, err := s.GetByEmail(ctx, "READER@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
	_, err = s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestAccountStoreDelete(t *testing.T) {
	t.Parallel()

	s := newAccountStore()
	ctx := context.Background()

	account, err := domain.NewAccount("reader@example.com", "correct horse battery")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, account))

	require.NoError(t, s.Delete(ctx, account.ID))
	_, err = s.GetByID(ctx, account.ID)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)

	err = s.Delete(ctx, account.ID)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}
