package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/store"
)

// ProfileStore implements store.ProfileStore using a PostgreSQL database.
type ProfileStore struct {
	db *sql.DB
}

// Ensure ProfileStore implements store.ProfileStore.
var _ store.ProfileStore = (*ProfileStore)(nil)

// NewProfileStore creates a PostgreSQL implementation of the ProfileStore
// interface. The database connection is initialized and managed by the
// caller.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// historyEntryRow is the jsonb shape of one reading-history entry.
type historyEntryRow struct {
	BookID string    `json:"book_id"`
	Rating *int      `json:"rating"`
	ReadAt time.Time `json:"read_at"`
}

// Save implements store.ProfileStore.Save as an upsert on user_id.
func (s *ProfileStore) Save(ctx context.Context, profile *domain.ReadingProfile) error {
	genres, err := json.Marshal(profile.FavoriteGenreNames())
	if err != nil {
		return store.NewStoreError("profile", "save", "failed to marshal genres", err)
	}
	blocked, err := json.Marshal(profile.BlockedItemIDs())
	if err != nil {
		return store.NewStoreError("profile", "save", "failed to marshal block list", err)
	}

	rows := make([]historyEntryRow, 0, len(profile.ReadingHistory()))
	for _, record := range profile.ReadingHistory() {
		rows = append(rows, historyEntryRow(record))
	}
	history, err := json.Marshal(rows)
	if err != nil {
		return store.NewStoreError("profile", "save", "failed to marshal history", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reading_profiles (user_id, favorite_genres, blocked_items, reading_history, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE
		SET favorite_genres = EXCLUDED.favorite_genres,
		    blocked_items = EXCLUDED.blocked_items,
		    reading_history = EXCLUDED.reading_history,
		    updated_at = now()`,
		profile.UserID().String(), genres, blocked, history)
	if err != nil {
		return store.NewStoreError("profile", "save", "failed to upsert profile", err)
	}
	return nil
}

// FindByUserID implements store.ProfileStore.FindByUserID.
func (s *ProfileStore) FindByUserID(ctx context.Context, userID domain.UserID) (*domain.ReadingProfile, error) {
	var genresRaw, blockedRaw, historyRaw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT favorite_genres, blocked_items, reading_history
		FROM reading_profiles
		WHERE user_id = $1`,
		userID.String()).Scan(&genresRaw, &blockedRaw, &historyRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrProfileNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("profile", "find", "failed to query profile", err)
	}

	return rehydrate(userID, genresRaw, blockedRaw, historyRaw)
}

// Delete implements store.ProfileStore.Delete. Deleting an absent profile
// is a no-op.
func (s *ProfileStore) Delete(ctx context.Context, userID domain.UserID) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM reading_profiles WHERE user_id = $1`, userID.String())
	if err != nil {
		return store.NewStoreError("profile", "delete", "failed to delete profile", err)
	}
	return nil
}

// rehydrate rebuilds the aggregate from its persisted row.
func rehydrate(userID domain.UserID, genresRaw, blockedRaw, historyRaw []byte) (*domain.ReadingProfile, error) {
	var genreNames []string
	if err := json.Unmarshal(genresRaw, &genreNames); err != nil {
		return nil, store.NewStoreError("profile", "find", "failed to unmarshal genres", err)
	}
	genres := make([]domain.Genre, 0, len(genreNames))
	for _, name := range genreNames {
		genre, err := domain.NewGenre(name)
		if err != nil {
			return nil, store.NewStoreError("profile", "find", "invalid stored genre", err)
		}
		genres = append(genres, genre)
	}
	preferences, err := domain.NewExplicitPreferencesFromGenres(genres)
	if err != nil {
		return nil, store.NewStoreError("profile", "find", "invalid stored preferences", err)
	}

	var blockedIDs []string
	if err := json.Unmarshal(blockedRaw, &blockedIDs); err != nil {
		return nil, store.NewStoreError("profile", "find", "failed to unmarshal block list", err)
	}

	var rows []historyEntryRow
	if err := json.Unmarshal(historyRaw, &rows); err != nil {
		return nil, store.NewStoreError("profile", "find", "failed to unmarshal history", err)
	}
	history := make([]*domain.ReadingHistoryEntry, 0, len(rows))
	for _, row := range rows {
		var rating *domain.Rating
		if row.Rating != nil {
			r, err := domain.NewRating(*row.Rating)
			if err != nil {
				return nil, store.NewStoreError("profile", "find", "invalid stored rating", err)
			}
			rating = &r
		}
		entry, err := domain.RehydrateReadingHistoryEntry(row.BookID, rating, row.ReadAt)
		if err != nil {
			return nil, store.NewStoreError("profile", "find", "invalid stored history entry", err)
		}
		history = append(history, entry)
	}

	profile, err := domain.RehydrateReadingProfile(userID, preferences, domain.NewBlockListFromIDs(blockedIDs), history)
	if err != nil {
		return nil, store.NewStoreError("profile", "find", "invalid stored profile", err)
	}
	return profile, nil
}
