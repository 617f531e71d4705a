package domain

// Rating bounds for book scores.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a 1-5 integer book score. No other value is constructible.
type Rating struct {
	value int
}

// NewRating creates a Rating from the given value.
// Returns a ValidationError unless the value is an integer in [1,5].
func NewRating(value int) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return Rating{}, NewValidationError("rating", "must be between 1 and 5", ErrRatingOutOfRange)
	}
	return Rating{value: value}, nil
}

// Value returns the numeric score.
func (r Rating) Value() int {
	return r.value
}
