package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReadingProfile is the aggregate root for one user's reading-interest
// state: explicit genre preferences, the block list, the per-book reading
// history, and the pending domain events recorded by mutations.
//
// Every public operation is atomic: it either fully applies and appends an
// event, or rejects with a ValidationError and leaves the profile untouched.
// The aggregate assumes single-writer access per instance; serializing
// concurrent read-modify-write cycles for the same user is the caller's
// responsibility at the repository boundary.
type ReadingProfile struct {
	userID      UserID
	preferences ExplicitPreferences
	blockList   BlockList
	history     map[string]*ReadingHistoryEntry
	// historyOrder preserves insertion order for ReadingHistory, which is
	// the documented ordering contract of this implementation.
	historyOrder []string
	events       []Event
}

// NewReadingProfile creates an empty profile for the given user.
func NewReadingProfile(userID UserID) *ReadingProfile {
	return &ReadingProfile{
		userID:      userID,
		preferences: NewExplicitPreferences(),
		blockList:   NewBlockList(),
		history:     map[string]*ReadingHistoryEntry{},
	}
}

// RehydrateReadingProfile rebuilds a profile from persisted state with an
// empty pending-event list. History entries are appended in the order given,
// which becomes the profile's insertion order.
func RehydrateReadingProfile(
	userID UserID,
	preferences ExplicitPreferences,
	blockList BlockList,
	history []*ReadingHistoryEntry,
) (*ReadingProfile, error) {
	profile := NewReadingProfile(userID)
	profile.preferences = preferences
	profile.blockList = blockList
	for _, entry := range history {
		if entry == nil {
			continue
		}
		if _, exists := profile.history[entry.BookID()]; exists {
			return nil, NewValidationError(
				"history",
				fmt.Sprintf("duplicate entry for book %q", entry.BookID()),
				ErrValidation,
			)
		}
		profile.history[entry.BookID()] = entry
		profile.historyOrder = append(profile.historyOrder, entry.BookID())
	}
	return profile, nil
}

// UserID returns the identifier of the profile owner.
func (p *ReadingProfile) UserID() UserID {
	return p.userID
}

// AddFavoriteGenre adds a genre to the explicit preferences and records a
// FavoriteGenreChanged event. Returns a ValidationError, wrapped with
// context, when the preference list is full or the genre already exists.
func (p *ReadingProfile) AddFavoriteGenre(genre Genre) error {
	prefs, err := p.preferences.AddGenre(genre)
	if err != nil {
		return fmt.Errorf("cannot add genre: %w", err)
	}

	p.preferences = prefs
	p.record(FavoriteGenreChanged{
		UserID:    p.userID.String(),
		Genre:     genre.Name(),
		Action:    GenreActionAdded,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// RemoveFavoriteGenre removes the named genre from the preferences. It is
// idempotent and always records a FavoriteGenreChanged event, even when the
// genre was not present; callers that care should check HasFavoriteGenre
// first.
func (p *ReadingProfile) RemoveFavoriteGenre(name string) {
	p.preferences = p.preferences.RemoveGenre(name)
	p.record(FavoriteGenreChanged{
		UserID:    p.userID.String(),
		Genre:     NormalizeGenreName(name),
		Action:    GenreActionRemoved,
		Timestamp: time.Now().UTC(),
	})
}

// HasFavoriteGenre reports whether the named genre is in the preferences.
func (p *ReadingProfile) HasFavoriteGenre(name string) bool {
	return p.preferences.HasGenre(name)
}

// AddOrUpdateRating rates a book, creating a history entry on first rating
// and replacing the stored rating on subsequent ones, then records a
// RatingGiven event. Returns a ValidationError if the book ID is empty or
// the book is currently blocked.
func (p *ReadingProfile) AddOrUpdateRating(bookID string, rating Rating) error {
	if strings.TrimSpace(bookID) == "" {
		return NewValidationError("book_id", "cannot be empty", ErrEmptyBookID)
	}
	if p.blockList.Contains(bookID) {
		return NewValidationError(
			"book_id",
			fmt.Sprintf("cannot rate blocked book %q", bookID),
			ErrBookBlocked,
		)
	}

	if entry, exists := p.history[bookID]; exists {
		entry.UpdateRating(rating)
	} else {
		entry, err := NewReadingHistoryEntry(bookID)
		if err != nil {
			return err
		}
		entry.UpdateRating(rating)
		p.history[bookID] = entry
		p.historyOrder = append(p.historyOrder, bookID)
	}

	p.record(RatingGiven{
		UserID:    p.userID.String(),
		BookID:    bookID,
		Rating:    rating.Value(),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// BlockItem adds a book to the block list and records an ItemBlocked event.
// Returns a ValidationError if the book ID is empty or a history entry for
// the book carries a rating (an "active" book).
func (p *ReadingProfile) BlockItem(bookID string) error {
	if strings.TrimSpace(bookID) == "" {
		return NewValidationError("book_id", "cannot be empty", ErrEmptyBookID)
	}
	if entry, exists := p.history[bookID]; exists && entry.Rating() != nil {
		return NewValidationError(
			"book_id",
			fmt.Sprintf("cannot block active book %q, remove rating first", bookID),
			ErrBookActive,
		)
	}

	p.blockList = p.blockList.Add(bookID)
	p.record(ItemBlocked{
		UserID:    p.userID.String(),
		BookID:    bookID,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// UnblockItem removes a book from the block list. It is idempotent and
// records no event.
func (p *ReadingProfile) UnblockItem(bookID string) {
	p.blockList = p.blockList.Remove(bookID)
}

// IsBlocked reports whether the given book is on the block list.
func (p *ReadingProfile) IsBlocked(bookID string) bool {
	return p.blockList.Contains(bookID)
}

// FavoriteGenreNames returns the preferred genre names in insertion order.
func (p *ReadingProfile) FavoriteGenreNames() []string {
	return p.preferences.Names()
}

// HistoryRecord is the read-side view of one ReadingHistoryEntry. Rating is
// nil for books that were never rated.
type HistoryRecord struct {
	BookID string    `json:"book_id"`
	Rating *int      `json:"rating"`
	ReadAt time.Time `json:"read_at"`
}

// ReadingHistory returns one record per history entry in insertion order.
func (p *ReadingProfile) ReadingHistory() []HistoryRecord {
	records := make([]HistoryRecord, 0, len(p.historyOrder))
	for _, bookID := range p.historyOrder {
		entry := p.history[bookID]
		record := HistoryRecord{
			BookID: entry.BookID(),
			ReadAt: entry.ReadAt(),
		}
		if r := entry.Rating(); r != nil {
			value := r.Value()
			record.Rating = &value
		}
		records = append(records, record)
	}
	return records
}

// BlockedItemIDs returns the blocked book IDs sorted lexicographically.
func (p *ReadingProfile) BlockedItemIDs() []string {
	return p.blockList.IDs()
}

// DrainEvents returns all pending events in the order they were recorded
// and clears the pending list. A subsequent call before any further
// mutation returns an empty slice.
func (p *ReadingProfile) DrainEvents() []Event {
	events := p.events
	p.events = nil
	return events
}

func (p *ReadingProfile) record(event Event) {
	p.events = append(p.events, event)
}
