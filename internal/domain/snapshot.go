package domain

import "math"

// ProfileSnapshot is a point-in-time, denormalized view of a profile for
// query use. It is a plain value: computed from the aggregate's current
// state, never stored, never mutated after construction, and carrying no
// reference back to the aggregate.
type ProfileSnapshot struct {
	UserID         string          `json:"user_id"`
	FavoriteGenres []string        `json:"favorite_genres"`
	BooksRead      int             `json:"books_read"`
	AverageRating  float64         `json:"average_rating"`
	BlockedItems   []string        `json:"blocked_items"`
	History        []HistoryRecord `json:"history"`
}

// NewProfileSnapshot builds a snapshot from the profile's current state.
// AverageRating is the mean of the non-nil ratings rounded to two decimal
// places, or 0.0 when no ratings exist.
func NewProfileSnapshot(profile *ReadingProfile) ProfileSnapshot {
	history := profile.ReadingHistory()

	sum, count := 0, 0
	for _, record := range history {
		if record.Rating != nil {
			sum += *record.Rating
			count++
		}
	}

	average := 0.0
	if count > 0 {
		average = math.Round(float64(sum)/float64(count)*100) / 100
	}

	return ProfileSnapshot{
		UserID:         profile.UserID().String(),
		FavoriteGenres: profile.FavoriteGenreNames(),
		BooksRead:      len(history),
		AverageRating:  average,
		BlockedItems:   profile.BlockedItemIDs(),
		History:        history,
	}
}
