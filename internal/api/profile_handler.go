package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/marchenry/bookworm-api/internal/domain"
	"github.com/marchenry/bookworm-api/internal/service"
)

// ProfileHandler handles reading-profile API requests. All routes require
// authentication and operate only on the caller's own profile.
type ProfileHandler struct {
	profileService service.ProfileService
	validator      *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator.New(),
	}
}

// Create handles POST /profiles/{userID}.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	profile, err := h.profileService.CreateProfile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, NewProfileResponse(profile))
}

// Get handles GET /profiles/{userID}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(profile))
}

// Delete handles DELETE /profiles/{userID}. Deleting an absent profile
// succeeds.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Snapshot handles GET /profiles/{userID}/snapshot.
func (h *ProfileHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	snapshot, err := h.profileService.GetSnapshot(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, snapshot)
}

// AddGenre handles POST /profiles/{userID}/genres.
func (h *ProfileHandler) AddGenre(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	var req AddGenreRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	profile, err := h.profileService.AddGenre(r.Context(), userID, req.Genre)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(profile))
}

// RemoveGenre handles DELETE /profiles/{userID}/genres/{name}. Removing a
// genre that is not a favorite succeeds.
func (h *ProfileHandler) RemoveGenre(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		HandleAPIError(w, r,
			domain.NewValidationError("name", "is required", domain.ErrValidation), "")
		return
	}

	profile, err := h.profileService.RemoveGenre(r.Context(), userID, name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(profile))
}

// AddRating handles POST /profiles/{userID}/ratings. Re-rating a book
// updates the existing history entry.
func (h *ProfileHandler) AddRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	var req AddRatingRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	profile, err := h.profileService.AddRating(r.Context(), userID, req.BookID, req.Rating)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(profile))
}

// BlockItem handles POST /profiles/{userID}/blocks.
func (h *ProfileHandler) BlockItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	var req BlockItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	profile, err := h.profileService.BlockItem(r.Context(), userID, req.BookID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(profile))
}

// UnblockItem handles DELETE /profiles/{userID}/blocks/{bookID}. Unblocking
// a book that is not blocked succeeds.
func (h *ProfileHandler) UnblockItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireProfileOwner(w, r)
	if !ok {
		return
	}

	bookID := chi.URLParam(r, "bookID")
	if decoded, err := url.PathUnescape(bookID); err == nil {
		bookID = decoded
	}
	if bookID == "" {
		HandleAPIError(w, r,
			domain.NewValidationError("bookID", "is required", domain.ErrValidation), "")
		return
	}

	profile, err := h.profileService.UnblockItem(r.Context(), userID, bookID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewProfileResponse(profile))
}
