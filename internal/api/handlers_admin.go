// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/validation"
	ws "github.com/tomtom215/filmlerim/internal/websocket"
)

// FilmDeleted is the film_deleted event payload.
type FilmDeleted struct {
	ID int64 `json:"id"`
}

// CreateFilm adds a film to the catalog.
//
// @Summary Create film
// @Tags admin
// @Accept json
// @Produce json
// @Param body body validation.FilmForm true "Film"
// @Success 201 {object} models.APIResponse{data=models.Film}
// @Failure 400 {object} models.APIResponse
// @Failure 403 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse "TMDB id already in the catalog"
// @Router /api/v1/admin/films [post]
func (h *Handler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var form validation.FilmForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	film, err := h.db.CreateFilm(r.Context(), form.Input())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("film_id", film.ID).Str("title", film.Title).Msg("Film created")
	h.events.BroadcastJSON(ws.MessageTypeFilmCreated, film)
	respondSuccess(w, http.StatusCreated, film, start)
}

// UpdateFilm replaces a film's editable fields.
//
// @Summary Update film
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Film ID"
// @Param body body validation.FilmForm true "Film"
// @Success 200 {object} models.APIResponse{data=models.Film}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/films/{id} [put]
func (h *Handler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var form validation.FilmForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	film, err := h.db.UpdateFilm(r.Context(), id, form.Input())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.events.BroadcastJSON(ws.MessageTypeFilmUpdated, film)
	respondSuccess(w, http.StatusOK, film, start)
}

// DeleteFilm removes a film with its comments, likes, favorites and
// watchlist entries.
//
// @Summary Delete film
// @Tags admin
// @Produce json
// @Param id path int true "Film ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/admin/films/{id} [delete]
func (h *Handler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.db.DeleteFilm(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("film_id", id).Msg("Film deleted")
	h.events.BroadcastJSON(ws.MessageTypeFilmDeleted, FilmDeleted{ID: id})
	respondSuccess(w, http.StatusOK, map[string]interface{}{"id": id, "deleted": true}, start)
}

// TMDBSearch lists TMDB candidates for the import screen, flagging the ones
// already in the catalog.
//
// @Summary Search TMDB
// @Tags admin
// @Produce json
// @Param q query string true "Title to search for"
// @Success 200 {object} models.APIResponse{data=[]tmdb.Candidate}
// @Failure 404 {object} models.APIResponse "No results"
// @Failure 502 {object} models.APIResponse "TMDB request failed"
// @Failure 503 {object} models.APIResponse "TMDB not configured or unavailable"
// @Router /api/v1/admin/tmdb/search [get]
func (h *Handler) TMDBSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	candidates, err := h.tmdb.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	ids := make([]int64, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].TMDBID
	}
	existing, err := h.db.ExistingTMDBIDs(ctx, ids)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	for i := range candidates {
		candidates[i].Imported = existing[candidates[i].TMDBID]
	}

	respondSuccess(w, http.StatusOK, candidates, start)
}

// TMDBImport copies TMDB films into the catalog, skipping ids already
// present.
//
// @Summary Import from TMDB
// @Tags admin
// @Accept json
// @Produce json
// @Param body body validation.ImportForm true "TMDB ids"
// @Success 200 {object} models.APIResponse{data=models.ImportResult}
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse
// @Router /api/v1/admin/tmdb/import [post]
func (h *Handler) TMDBImport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var form validation.ImportForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	result, err := h.importer.Import(r.Context(), form.TMDBIDs)
	if result != nil {
		for i := range result.Imported {
			h.events.BroadcastJSON(ws.MessageTypeFilmCreated, &result.Imported[i])
		}
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, result, start)
}
