package domain

import "strings"

// UserID is the opaque identifier of the profile owner. It is a value
// object: validated at construction and never mutated afterwards.
type UserID struct {
	value string
}

// NewUserID creates a UserID from the given string.
// Returns a ValidationError if the value is empty or all whitespace.
func NewUserID(value string) (UserID, error) {
	if strings.TrimSpace(value) == "" {
		return UserID{}, NewValidationError("user_id", "cannot be empty", ErrEmptyUserID)
	}
	return UserID{value: value}, nil
}

// String returns the raw identifier value.
func (id UserID) String() string {
	return id.value
}

// IsZero reports whether the UserID is the zero value.
func (id UserID) IsZero() bool {
	return id.value == ""
}
