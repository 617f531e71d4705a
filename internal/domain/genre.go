package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// genreTitleCaser title-cases genre names. cases.Caser is not safe for
// concurrent use, so a fresh caser is taken per call via this factory.
func genreTitleCaser() cases.Caser {
	return cases.Title(language.Und)
}

// Genre is a normalized favorite-genre label. The name is trimmed and
// title-cased at construction, so "science fiction" and "Science Fiction"
// produce equal values.
type Genre struct {
	name string
}

// NewGenre creates a Genre from the given name.
// Returns a ValidationError if the name is empty or all whitespace.
func NewGenre(name string) (Genre, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Genre{}, NewValidationError("genre", "name cannot be empty", ErrEmptyGenreName)
	}
	return Genre{name: genreTitleCaser().String(trimmed)}, nil
}

// NormalizeGenreName applies the same normalization NewGenre applies,
// without the emptiness check. Useful for lookups by raw name.
func NormalizeGenreName(name string) string {
	return genreTitleCaser().String(strings.TrimSpace(name))
}

// Name returns the normalized genre name.
func (g Genre) Name() string {
	return g.name
}

// String implements fmt.Stringer.
func (g Genre) String() string {
	return g.name
}
