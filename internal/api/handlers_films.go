// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/filmlerim/internal/catalog"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/models"
)

// Home returns the latest and the top rated films.
//
// @Summary Home screen
// @Tags catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HomeFeed}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/home [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	limit := h.config.API.HomeListSize

	latest, err := h.db.ListLatestFilms(ctx, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	topRated, err := h.db.ListTopRatedFilms(ctx, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.HomeFeed{Latest: latest, TopRated: topRated}, start)
}

// ListFilms is the dashboard: films filtered by genre in the database and
// by text in catalog.Filter, then sorted and paginated.
//
// @Summary Search the catalog
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive title or description substring"
// @Param genre query string false "Exact genre"
// @Param sort query string false "newest (default), az or top_rated"
// @Param page query int false "1-indexed page"
// @Param page_size query int false "Films per page"
// @Param lang query string false "Collation language (tr or en)"
// @Success 200 {object} models.APIResponse{data=models.FilmPage}
// @Failure 401 {object} models.APIResponse
// @Router /api/v1/films [get]
func (h *Handler) ListFilms(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	films, err := h.db.ListFilms(r.Context(), database.FilmFilter{Genre: q.Get("genre")})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	// Text matching uses Unicode case folding, which SQL lower() lacks.
	films = catalog.Filter(films, catalog.FilterOptions{Query: q.Get("q")})

	lang := h.viewerLanguage(r.Context(), q.Get("lang"))
	sorted := catalog.Sort(films, catalog.ParseSortKey(q.Get("sort")), lang)
	page := catalog.Paginate(sorted, getIntParam(r, "page", 1), h.pageSize(getIntParam(r, "page_size", 0)))

	respondSuccess(w, http.StatusOK, models.FilmPage{Films: page.Items, Pagination: page.Pagination}, start)
}

// ListGenres returns every genre in use, alphabetically.
//
// @Summary Genre filter options
// @Tags catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string}
// @Router /api/v1/films/genres [get]
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genres, err := h.db.ListGenres(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, genres, start)
}

// GetFilm is the film screen: the film, its rating label, comments newest
// first and the viewer's favorite and watchlist state.
//
// @Summary Film detail
// @Tags catalog
// @Produce json
// @Param id path int true "Film ID"
// @Success 200 {object} models.APIResponse{data=models.FilmDetail}
// @Failure 404 {object} models.APIResponse
// @Router /api/v1/films/{id} [get]
func (h *Handler) GetFilm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()
	viewer := currentSession(r).UserID

	film, err := h.db.GetFilm(ctx, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	comments, err := h.db.ListCommentsByFilm(ctx, id, viewer)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	isFavorite, err := h.db.IsFavorite(ctx, viewer, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	detail := models.FilmDetail{
		Film:        *film,
		RatingLabel: catalog.RatingLabel(film.AverageRating),
		Comments:    comments,
		IsFavorite:  isFavorite,
	}

	entry, err := h.db.GetWatchlistEntry(ctx, viewer, id)
	switch {
	case err == nil:
		detail.WatchlistStatus = &entry.Status
	case !errors.Is(err, database.ErrNotFound):
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, detail, start)
}
