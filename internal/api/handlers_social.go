// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/validation"
)

// ListFavorites returns the viewer's favorite films.
//
// @Summary Favorite films
// @Tags social
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Film}
// @Router /api/v1/favorites [get]
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	films, err := h.db.ListFavoriteFilms(r.Context(), currentSession(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, films, start)
}

// ToggleFavorite adds the film to the viewer's favorites, or removes it.
//
// @Summary Toggle favorite
// @Tags social
// @Produce json
// @Param id path int true "Film ID"
// @Success 200 {object} models.APIResponse{data=models.FavoriteState}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/films/{id}/favorite [post]
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	filmID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	state, err := h.social.ToggleFavorite(r.Context(), currentSession(r).UserID, filmID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, state, start)
}

// ListWatchlist returns the viewer's watchlist, optionally one status only,
// with per-status counts.
//
// @Summary Watchlist
// @Tags social
// @Produce json
// @Param status query string false "to_watch or watched"
// @Success 200 {object} models.APIResponse{data=models.WatchlistView}
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/watchlist [get]
func (h *Handler) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	userID := currentSession(r).UserID

	status := models.WatchStatus(strings.TrimSpace(r.URL.Query().Get("status")))
	if status != "" && !status.Valid() {
		respondServiceError(w, validation.NewFieldError("status", "oneof", "Status must be to_watch or watched"))
		return
	}

	entries, err := h.db.ListWatchlist(ctx, userID, status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	counts, err := h.db.CountWatchlistByStatus(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.WatchlistView{Entries: entries, Counts: counts}, start)
}

// SetWatchlist sets the film's watchlist status. Sending the current status
// again removes the film from the watchlist.
//
// @Summary Set watchlist status
// @Tags social
// @Accept json
// @Produce json
// @Param id path int true "Film ID"
// @Param body body validation.WatchlistForm true "Status"
// @Success 200 {object} models.APIResponse{data=models.WatchlistState}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/films/{id}/watchlist [put]
func (h *Handler) SetWatchlist(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	filmID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var form validation.WatchlistForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	state, err := h.social.SetWatchlistStatus(r.Context(), currentSession(r).UserID, filmID, form.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, state, start)
}

// CreateComment posts a rated comment on a film.
//
// @Summary Comment on a film
// @Tags social
// @Accept json
// @Produce json
// @Param id path int true "Film ID"
// @Param body body validation.CommentForm true "Comment"
// @Success 201 {object} models.APIResponse{data=models.Comment}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/films/{id}/comments [post]
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	filmID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var form validation.CommentForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	comment, err := h.social.CreateComment(r.Context(), filmID, currentSession(r).UserID, form.Input())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusCreated, comment, start)
}

// UpdateComment edits the viewer's own comment.
//
// @Summary Edit a comment
// @Tags social
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param body body validation.CommentForm true "Comment"
// @Success 200 {object} models.APIResponse{data=models.Comment}
// @Failure 403 {object} models.APIResponse "Not the author"
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/comments/{id} [put]
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	commentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var form validation.CommentForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	comment, err := h.social.UpdateComment(r.Context(), commentID, currentSession(r).UserID, form.Input())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, comment, start)
}

// DeleteComment removes the viewer's own comment and its likes.
//
// @Summary Delete a comment
// @Tags social
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse "Not the author"
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	commentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.social.DeleteComment(r.Context(), commentID, currentSession(r).UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"id": commentID, "deleted": true}, start)
}

// ToggleLike likes or unlikes a comment. A failed write answers 500 with
// the stored state in error.details so the client can roll back.
//
// @Summary Toggle like
// @Tags social
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.APIResponse{data=models.LikeState}
// @Failure 404 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "Toggle already in progress"
// @Failure 500 {object} models.APIResponse "Write failed; details carry the stored state"
// @Router /api/v1/comments/{id}/like [post]
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	commentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	state, err := h.social.ToggleLike(r.Context(), commentID, currentSession(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, state, start)
}
