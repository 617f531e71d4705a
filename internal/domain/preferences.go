package domain

import "fmt"

// MaxFavoriteGenres is the upper bound on explicit genre preferences.
const MaxFavoriteGenres = 5

// ExplicitPreferences is an ordered, duplicate-free collection of up to
// five favorite genres. It is immutable: AddGenre and RemoveGenre return
// a new value and never modify the receiver.
type ExplicitPreferences struct {
	genres []Genre
}

// NewExplicitPreferences creates an empty preference collection.
func NewExplicitPreferences() ExplicitPreferences {
	return ExplicitPreferences{}
}

// NewExplicitPreferencesFromGenres creates a preference collection from the
// given genres, enforcing the size and uniqueness invariants. Used when
// rehydrating a profile from storage.
func NewExplicitPreferencesFromGenres(genres []Genre) (ExplicitPreferences, error) {
	prefs := NewExplicitPreferences()
	for _, g := range genres {
		var err error
		prefs, err = prefs.AddGenre(g)
		if err != nil {
			return ExplicitPreferences{}, err
		}
	}
	return prefs, nil
}

// AddGenre returns a new collection with the genre appended.
// Returns a ValidationError if the collection already has five entries or
// a genre with the same normalized name exists.
func (p ExplicitPreferences) AddGenre(genre Genre) (ExplicitPreferences, error) {
	if len(p.genres) >= MaxFavoriteGenres {
		return ExplicitPreferences{}, NewValidationError(
			"preferences",
			fmt.Sprintf("cannot exceed %d favorite genres", MaxFavoriteGenres),
			ErrGenreLimitReached,
		)
	}
	if p.HasGenre(genre.Name()) {
		return ExplicitPreferences{}, NewValidationError(
			"preferences",
			fmt.Sprintf("genre %q already exists", genre.Name()),
			ErrDuplicateGenre,
		)
	}

	genres := make([]Genre, len(p.genres), len(p.genres)+1)
	copy(genres, p.genres)
	return ExplicitPreferences{genres: append(genres, genre)}, nil
}

// RemoveGenre returns a new collection without the named genre. The name is
// normalized before matching; removing an absent genre yields an equivalent
// collection.
func (p ExplicitPreferences) RemoveGenre(name string) ExplicitPreferences {
	normalized := NormalizeGenreName(name)
	genres := make([]Genre, 0, len(p.genres))
	for _, g := range p.genres {
		if g.Name() != normalized {
			genres = append(genres, g)
		}
	}
	return ExplicitPreferences{genres: genres}
}

// HasGenre reports whether a genre with the given name is present.
// The name is normalized before matching.
func (p ExplicitPreferences) HasGenre(name string) bool {
	normalized := NormalizeGenreName(name)
	for _, g := range p.genres {
		if g.Name() == normalized {
			return true
		}
	}
	return false
}

// Names returns the genre names in insertion order.
func (p ExplicitPreferences) Names() []string {
	names := make([]string, len(p.genres))
	for i, g := range p.genres {
		names[i] = g.Name()
	}
	return names
}

// Genres returns a copy of the genres in insertion order.
func (p ExplicitPreferences) Genres() []Genre {
	genres := make([]Genre, len(p.genres))
	copy(genres, p.genres)
	return genres
}

// Len returns the number of favorite genres.
func (p ExplicitPreferences) Len() int {
	return len(p.genres)
}
