// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/filmlerim/internal/catalog"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/validation"
)

// GetProfile returns the viewer's profile and activity statistics.
//
// @Summary Profile screen
// @Tags profile
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ProfileView}
// @Router /api/v1/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	userID := currentSession(r).UserID

	profile, err := h.db.GetProfileByID(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	favorites, err := h.db.ListFavoriteFilms(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	comments, err := h.db.ListCommentsByUser(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	lang := catalog.NormalizeLanguage(profile.Preferences.Language)
	if override := r.URL.Query().Get("lang"); override != "" {
		lang = catalog.NormalizeLanguage(override)
	}

	respondSuccess(w, http.StatusOK, models.ProfileView{
		Profile: *profile,
		Stats:   catalog.BuildProfileStats(favorites, comments, h.now(), lang),
	}, start)
}

// UpdateProfile edits the bio and avatar.
//
// @Summary Edit profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body validation.ProfileForm true "Profile"
// @Success 200 {object} models.APIResponse{data=models.Profile}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var form validation.ProfileForm
	if !decodeAndValidate(w, r, &form) {
		return
	}
	form.Normalize()

	profile, err := h.db.UpdateProfileDetails(r.Context(), currentSession(r).UserID, form.Bio, form.AvatarURL)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, profile, start)
}

// GetPreferences returns the viewer's theme and language.
//
// @Summary Display preferences
// @Tags profile
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Preferences}
// @Router /api/v1/profile/preferences [get]
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	profile, err := h.db.GetProfileByID(r.Context(), currentSession(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, profile.Preferences, start)
}

// UpdatePreferences stores theme and language on the profile.
//
// @Summary Set display preferences
// @Tags profile
// @Accept json
// @Produce json
// @Param body body validation.PreferencesForm true "Preferences"
// @Success 200 {object} models.APIResponse{data=models.Preferences}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/profile/preferences [put]
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var form validation.PreferencesForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	profile, err := h.db.UpdatePreferences(r.Context(), currentSession(r).UserID, form.Preferences())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, profile.Preferences, start)
}
