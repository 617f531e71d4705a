package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/store"
)

func mustUserID(t *testing.T, value string) domain.UserID {
	t.Helper()
	id, err := domain.NewUserID(value)
	require.NoError(t, err)
	return id
}

func TestProfileStoreSaveAndFind(t *testing.T) {
	t.Parallel()

	s := NewProfileStore()
	ctx := context.Background()
	userID := mustUserID(t, "u1")

	profile := domain.NewReadingProfile(userID)
	genre, err := domain.NewGenre("Fantasy")
	require.NoError(t, err)
	require.NoError(t, profile.AddFavoriteGenre(genre))

	require.NoError(t, s.Save(ctx, profile))

	loaded, err := s.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy"}, loaded.FavoriteGenreNames())

	// The store persists state, not pending events.
	assert.Empty(t, loaded.DrainEvents())
}

func TestProfileStoreFindNotFound(t *testing.T) {
	t.Parallel()

	s := NewProfileStore()
	_, err := s.FindByUserID(context.Background(), mustUserID(t, "missing"))
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestProfileStoreSaveIsUpsert(t *testing.T) {
	t.Parallel()

	s := NewProfileStore()
	ctx := context.Background()
	userID := mustUserID(t, "u1")

	first := domain.NewReadingProfile(userID)
	rating, _ := domain.NewRating(5)
	require.NoError(t, first.AddOrUpdateRating("b1", rating))
	require.NoError(t, s.Save(ctx, first))

	// A second save for the same user fully replaces the first.
	second := domain.NewReadingProfile(userID)
	require.NoError(t, s.Save(ctx, second))

	loaded, err := s.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, loaded.ReadingHistory())
}

func TestProfileStoreIsolation(t *testing.T) {
	t.Parallel()

	s := NewProfileStore()
	ctx := context.Background()
	userID := mustUserID(t, "u1")

	profile := domain.NewReadingProfile(userID)
	require.NoError(t, s.Save(ctx, profile))

	// Mutating the instance after save must not leak into the store.
	rating, _ := domain.NewRating(4)
	require.NoError(t, profile.AddOrUpdateRating("b1", rating))

	loaded, err := s.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, loaded.ReadingHistory())

	// Mutating a loaded instance must not leak into later loads.
	require.NoError(t, loaded.AddOrUpdateRating("b2", rating))
	reloaded, err := s.FindByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.ReadingHistory())
}

func TestProfileStoreRoundTripPreservesState(t *testing.T) {
	t.Parallel()

	s := NewProfileStore()
	ctx := context.Background()
	userID := mustUserID(t, "u1")

	profile := domain.NewReadingProfile(userID)
	for _, name := range []string{"Fantasy", "Horror"} {
		genre, err := domain.NewGenre(name)
		require.NoError(t, err)
		require.NoError(t, profile.AddFavoriteGenre(genre))
	}
	rating, _ := domain.NewRating(3)
	require.NoError(t, profile.AddOrUpdateRating("b1", rating))
	require.NoError(t, profile.BlockItem("b9"))
	require.NoError(t, s.Save(ctx, profile))

	loaded, err := s.FindByUserID(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fantasy", "Horror"}, loaded.FavoriteGenreNames())
	assert.Equal(t, []string{"b9"}, loaded.BlockedItemIDs())

	history := loaded.ReadingHistory()
	require.Len(t, history, 1)
	assert.Equal(t, "b1", history[0].BookID)
	require.NotNil(t, history[0].Rating)
	assert.Equal(t, 3, *history[0].Rating)
	assert.False(t, history[0].ReadAt.IsZero())
}

func TestProfileStoreDeleteIdempotent(t *testing.T) {
	t.Parallel()

	s := NewProfileStore()
	ctx := context.Background()
	userID := mustUserID(t, "u1")

	require.NoError(t, s.Save(ctx, domain.NewReadingProfile(userID)))
	require.NoError(t, s.Delete(ctx, userID))

	_, err := s.FindByUserID(ctx, userID)
	assert.ErrorIs(t, err, store.ErrProfileNotFound)

	// Deleting a non-existent profile is a no-op.
	require.NoError(t, s.Delete(ctx, userID))
}
