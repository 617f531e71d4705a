package domain

import "time"

// Event type names as they appear in logs and event handlers.
const (
	EventTypeRatingGiven          = "rating_given"
	EventTypeFavoriteGenreChanged = "favorite_genre_changed"
	EventTypeItemBlocked          = "item_blocked"
)

// Genre change actions carried by FavoriteGenreChanged.
const (
	GenreActionAdded   = "added"
	GenreActionRemoved = "removed"
)

// Event is an immutable fact recorded by the aggregate as a consequence of
// a successful mutation. Events accumulate on the profile until the caller
// drains them; they have no delivery guarantee of their own.
type Event interface {
	// EventType returns the stable name of the event kind.
	EventType() string

	// AggregateID returns the user ID of the profile that recorded the event.
	AggregateID() string

	// OccurredAt returns the UTC time the event was recorded.
	OccurredAt() time.Time
}

// RatingGiven records that the user rated a book.
type RatingGiven struct {
	UserID    string
	BookID    string
	Rating    int
	Timestamp time.Time
}

func (e RatingGiven) EventType() string     { return EventTypeRatingGiven }
func (e RatingGiven) AggregateID() string   { return e.UserID }
func (e RatingGiven) OccurredAt() time.Time { return e.Timestamp }

// FavoriteGenreChanged records that a genre was added to or removed from
// the user's explicit preferences. Action is one of GenreActionAdded or
// GenreActionRemoved.
type FavoriteGenreChanged struct {
	UserID    string
	Genre     string
	Action    string
	Timestamp time.Time
}

func (e FavoriteGenreChanged) EventType() string     { return EventTypeFavoriteGenreChanged }
func (e FavoriteGenreChanged) AggregateID() string   { return e.UserID }
func (e FavoriteGenreChanged) OccurredAt() time.Time { return e.Timestamp }

// ItemBlocked records that the user blocked a book.
type ItemBlocked struct {
	UserID    string
	BookID    string
	Timestamp time.Time
}

func (e ItemBlocked) EventType() string     { return EventTypeItemBlocked }
func (e ItemBlocked) AggregateID() string   { return e.UserID }
func (e ItemBlocked) OccurredAt() time.Time { return e.Timestamp }
