package domain

import (
	"strings"
	"time"
)

// ReadingHistoryEntry is one book's reading record for a user. Unlike the
// value objects it is mutable state, but it is privately owned by the
// aggregate: no caller ever holds a reference to an entry independent of
// the profile that owns it. Identity is the book ID; the rating carries no
// identity weight.
type ReadingHistoryEntry struct {
	bookID string
	rating *Rating
	readAt time.Time
}

// NewReadingHistoryEntry creates an entry for the given book with the
// current timestamp and no rating.
// Returns a ValidationError if the book ID is empty or all whitespace.
func NewReadingHistoryEntry(bookID string) (*ReadingHistoryEntry, error) {
	if strings.TrimSpace(bookID) == "" {
		return nil, NewValidationError("book_id", "cannot be empty", ErrEmptyBookID)
	}
	return &ReadingHistoryEntry{
		bookID: bookID,
		readAt: time.Now().UTC(),
	}, nil
}

// RehydrateReadingHistoryEntry rebuilds an entry from persisted state.
func RehydrateReadingHistoryEntry(bookID string, rating *Rating, readAt time.Time) (*ReadingHistoryEntry, error) {
	entry, err := NewReadingHistoryEntry(bookID)
	if err != nil {
		return nil, err
	}
	entry.rating = rating
	entry.readAt = readAt
	return entry, nil
}

// BookID returns the identity of this entry.
func (e *ReadingHistoryEntry) BookID() string {
	return e.bookID
}

// Rating returns the stored rating, or nil if the book has not been rated.
func (e *ReadingHistoryEntry) Rating() *Rating {
	return e.rating
}

// ReadAt returns the timestamp recorded when the entry was created.
func (e *ReadingHistoryEntry) ReadAt() time.Time {
	return e.readAt
}

// UpdateRating replaces the stored rating in place.
func (e *ReadingHistoryEntry) UpdateRating(rating Rating) {
	e.rating = &rating
}

// Same reports whether two entries represent the same record. Entries are
// the same record if and only if their book IDs match, regardless of rating.
func (e *ReadingHistoryEntry) Same(other *ReadingHistoryEntry) bool {
	if other == nil {
		return false
	}
	return e.bookID == other.bookID
}
