package memory

import (
	"context"
	"sync"

	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/store"
)

// ProfileStore is an in-memory implementation of store.ProfileStore.
// Profiles are deep-copied on both save and load, so no two callers ever
// share a mutable aggregate instance through the store.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*domain.ReadingProfile
}

// Ensure ProfileStore implements store.ProfileStore.
var _ store.ProfileStore = (*ProfileStore)(nil)

// NewProfileStore creates an empty in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: map[string]*domain.ReadingProfile{},
	}
}

// Save implements store.ProfileStore.Save as an idempotent upsert.
func (s *ProfileStore) Save(ctx context.Context, profile *domain.ReadingProfile) error {
	clone, err := cloneProfile(profile)
	if err != nil {
		return store.NewStoreError("profile", "save", "failed to copy aggregate", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID().String()] = clone
	return nil
}

// FindByUserID implements store.ProfileStore.FindByUserID.
func (s *ProfileStore) FindByUserID(ctx context.Context, userID domain.UserID) (*domain.ReadingProfile, error) {
	s.mu.RLock()
	profile, ok := s.profiles[userID.String()]
	s.mu.RUnlock()

	if !ok {
		return nil, store.ErrProfileNotFound
	}

	clone, err := cloneProfile(profile)
	if err != nil {
		return nil, store.NewStoreError("profile", "find", "failed to copy aggregate", err)
	}
	return clone, nil
}

// Delete implements store.ProfileStore.Delete. Deleting an absent profile
// is a no-op.
func (s *ProfileStore) Delete(ctx context.Context, userID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID.String())
	return nil
}

// cloneProfile rebuilds an equivalent aggregate from the profile's
// observable state. Pending events are intentionally not carried over; the
// store persists state, not the event log.
func cloneProfile(profile *domain.ReadingProfile) (*domain.ReadingProfile, error) {
	genres := make([]domain.Genre, 0, len(profile.FavoriteGenreNames()))
	for _, name := range profile.FavoriteGenreNames() {
		genre, err := domain.NewGenre(name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	preferences, err := domain.NewExplicitPreferencesFromGenres(genres)
	if err != nil {
		return nil, err
	}

	blockList := domain.NewBlockListFromIDs(profile.BlockedItemIDs())

	records := profile.ReadingHistory()
	history := make([]*domain.ReadingHistoryEntry, 0, len(records))
	for _, record := range records {
		var rating *domain.Rating
		if record.Rating != nil {
			r, err := domain.NewRating(*record.Rating)
			if err != nil {
				return nil, err
			}
			rating = &r
		}
		entry, err := domain.RehydrateReadingHistoryEntry(record.BookID, rating, record.ReadAt)
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return domain.RehydrateReadingProfile(profile.UserID(), preferences, blockList, history)
}
