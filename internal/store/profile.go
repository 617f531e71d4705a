package store

import (
	"context"

	"github.com/marchenry/bookworm-api/internal/domain"
)

// ProfileStore defines the persistence contract for the ReadingProfile
// aggregate. The domain core depends on this interface but never
// implements it.
//
// The store persists aggregate state only; pending domain events are a
// caller concern and are never written. Implementations must not hand the
// same aggregate instance to two callers: loads return an instance the
// caller owns exclusively until it is saved back.
type ProfileStore interface {
	// Save upserts the profile keyed by its user ID. It overwrites any
	// prior entry for the same ID with no merge semantics, and is
	// idempotent.
	Save(ctx context.Context, profile *domain.ReadingProfile) error

	// FindByUserID retrieves the profile for the given user ID.
	// Returns ErrProfileNotFound if no profile exists; absence is never
	// signaled any other way.
	FindByUserID(ctx context.Context, userID domain.UserID) (*domain.ReadingProfile, error)

	// Delete removes the profile for the given user ID. Deleting a
	// non-existent profile is a no-op, not an error.
	Delete(ctx context.Context, userID domain.UserID) error
}
