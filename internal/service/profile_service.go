package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/events"
	"github.com/marchenry/bookworm-api/internal/platform/logger"
	"github.com/marchenry/bookworm-api/internal/store"
)

// ProfileService provides the reading-profile use cases. Each mutating
// operation is a load → mutate → save cycle against the profile store,
// with the aggregate's drained events handed to the event emitter after a
// successful save.
type ProfileService interface {
	// CreateProfile creates an empty profile for the user.
	// Returns ErrProfileExists if one already exists.
	CreateProfile(ctx context.Context, userID string) (*domain.ReadingProfile, error)

	// GetProfile retrieves the user's profile.
	// Returns ErrProfileNotFound if none exists.
	GetProfile(ctx context.Context, userID string) (*domain.ReadingProfile, error)

	// GetSnapshot computes the read-model snapshot of the user's profile.
	GetSnapshot(ctx context.Context, userID string) (domain.ProfileSnapshot, error)

	// AddGenre adds a favorite genre to the user's profile.
	AddGenre(ctx context.Context, userID, genreName string) (*domain.ReadingProfile, error)

	// RemoveGenre removes a favorite genre from the user's profile. It is
	// idempotent: removing an absent genre succeeds.
	RemoveGenre(ctx context.Context, userID, genreName string) (*domain.ReadingProfile, error)

	// AddRating adds or updates the user's rating for a book.
	AddRating(ctx context.Context, userID, bookID string, rating int) (*domain.ReadingProfile, error)

	// BlockItem blocks a book on the user's profile.
	BlockItem(ctx context.Context, userID, bookID string) (*domain.ReadingProfile, error)

	// UnblockItem unblocks a book on the user's profile. Idempotent.
	UnblockItem(ctx context.Context, userID, bookID string) (*domain.ReadingProfile, error)

	// DeleteProfile removes the user's profile. Deleting an absent
	// profile is a no-op.
	DeleteProfile(ctx context.Context, userID string) error
}

// profileServiceImpl implements ProfileService.
type profileServiceImpl struct {
	profileStore store.ProfileStore
	emitter      events.EventEmitter
	logger       *slog.Logger

	// userLocks serializes read-modify-write cycles per user ID. The
	// store contract alone does not protect against lost updates when
	// two requests mutate the same profile concurrently.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// Ensure profileServiceImpl implements ProfileService.
var _ ProfileService = (*profileServiceImpl)(nil)

// NewProfileService creates a ProfileService backed by the given store.
// The emitter receives the domain events drained after each successful
// save; pass nil to discard events.
func NewProfileService(
	profileStore store.ProfileStore,
	emitter events.EventEmitter,
	log *slog.Logger,
) (ProfileService, error) {
	if profileStore == nil {
		return nil, domain.NewValidationError("profileStore", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}
	return &profileServiceImpl{
		profileStore: profileStore,
		emitter:      emitter,
		logger:       log.With("component", "profile_service"),
		userLocks:    map[string]*sync.Mutex{},
	}, nil
}

// lockUser acquires the per-user mutex and returns its unlock function.
func (s *profileServiceImpl) lockUser(userID string) func() {
	s.mu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// CreateProfile implements ProfileService.CreateProfile.
func (s *profileServiceImpl) CreateProfile(ctx context.Context, userID string) (*domain.ReadingProfile, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}

	unlock := s.lockUser(id.String())
	defer unlock()

	_, err = s.profileStore.FindByUserID(ctx, id)
	if err == nil {
		return nil, ErrProfileExists
	}
	if !errors.Is(err, store.ErrProfileNotFound) {
		return nil, newProfileServiceError("create_profile", "failed to check existing profile", err)
	}

	profile := domain.NewReadingProfile(id)
	if err := s.profileStore.Save(ctx, profile); err != nil {
		return nil, newProfileServiceError("create_profile", "failed to save profile", err)
	}

	logger.FromContext(ctx).Info("profile created", "user_id", id.String())
	return profile, nil
}

// GetProfile implements ProfileService.GetProfile.
func (s *profileServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.ReadingProfile, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileStore.FindByUserID(ctx, id)
	if err != nil {
		return nil, newProfileServiceError("get_profile", "failed to load profile", err)
	}
	return profile, nil
}

// GetSnapshot implements ProfileService.GetSnapshot.
func (s *profileServiceImpl) GetSnapshot(ctx context.Context, userID string) (domain.ProfileSnapshot, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.ProfileSnapshot{}, err
	}
	return domain.NewProfileSnapshot(profile), nil
}

// AddGenre implements ProfileService.AddGenre.
func (s *profileServiceImpl) AddGenre(ctx context.Context, userID, genreName string) (*domain.ReadingProfile, error) {
	genre, err := domain.NewGenre(genreName)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, "add_genre", userID, func(profile *domain.ReadingProfile) error {
		return profile.AddFavoriteGenre(genre)
	})
}

// RemoveGenre implements ProfileService.RemoveGenre.
func (s *profileServiceImpl) RemoveGenre(ctx context.Context, userID, genreName string) (*domain.ReadingProfile, error) {
	return s.mutate(ctx, "remove_genre", userID, func(profile *domain.ReadingProfile) error {
		profile.RemoveFavoriteGenre(genreName)
		return nil
	})
}

// AddRating implements ProfileService.AddRating.
func (s *profileServiceImpl) AddRating(ctx context.Context, userID, bookID string, rating int) (*domain.ReadingProfile, error) {
	value, err := domain.NewRating(rating)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, "add_rating", userID, func(profile *domain.ReadingProfile) error {
		return profile.AddOrUpdateRating(bookID, value)
	})
}

// BlockItem implements ProfileService.BlockItem.
func (s *profileServiceImpl) BlockItem(ctx context.Context, userID, bookID string) (*domain.ReadingProfile, error) {
	return s.mutate(ctx, "block_item", userID, func(profile *domain.ReadingProfile) error {
		return profile.BlockItem(bookID)
	})
}

// UnblockItem implements ProfileService.UnblockItem.
func (s *profileServiceImpl) UnblockItem(ctx context.Context, userID, bookID string) (*domain.ReadingProfile, error) {
	return s.mutate(ctx, "unblock_item", userID, func(profile *domain.ReadingProfile) error {
		profile.UnblockItem(bookID)
		return nil
	})
}

// DeleteProfile implements ProfileService.DeleteProfile.
func (s *profileServiceImpl) DeleteProfile(ctx context.Context, userID string) error {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return err
	}

	unlock := s.lockUser(id.String())
	defer unlock()

	if err := s.profileStore.Delete(ctx, id); err != nil {
		return newProfileServiceError("delete_profile", "failed to delete profile", err)
	}
	logger.FromContext(ctx).Info("profile deleted", "user_id", id.String())
	return nil
}

// mutate runs one load → mutate → save cycle under the per-user lock and
// emits the drained events after a successful save. Domain validation
// errors from fn are returned to the caller as-is.
func (s *profileServiceImpl) mutate(
	ctx context.Context,
	operation string,
	userID string,
	fn func(profile *domain.ReadingProfile) error,
) (*domain.ReadingProfile, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}

	unlock := s.lockUser(id.String())
	defer unlock()

	profile, err := s.profileStore.FindByUserID(ctx, id)
	if err != nil {
		return nil, newProfileServiceError(operation, "failed to load profile", err)
	}

	if err := fn(profile); err != nil {
		return nil, err
	}

	drained := profile.DrainEvents()
	if err := s.profileStore.Save(ctx, profile); err != nil {
		return nil, newProfileServiceError(operation, "failed to save profile", err)
	}

	s.emit(ctx, drained)
	return profile, nil
}

// emit hands the events to the emitter. Delivery failures are logged, not
// surfaced: the save has already succeeded and events carry no delivery
// guarantee.
func (s *profileServiceImpl) emit(ctx context.Context, drained []domain.Event) {
	if s.emitter == nil || len(drained) == 0 {
		return
	}
	if err := s.emitter.Emit(ctx, drained); err != nil {
		s.logger.Warn("failed to emit domain events",
			"error", err,
			"event_count", len(drained))
	}
}
