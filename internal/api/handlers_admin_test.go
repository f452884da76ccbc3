// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/tmdb"
)

func validFilmBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"description": "A long enough description for the catalog.",
		"poster_url":  "https://example.com/poster.jpg",
		"genres":      []string{"Drama"},
	}
}

func TestAdminRoutesForbidStandardUsers(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.signup(t, "standard@example.com")
	film := env.createFilm(t, "Existing")

	tests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/api/v1/admin/films", validFilmBody("New")},
		{http.MethodPut, fmt.Sprintf("/api/v1/admin/films/%d", film.ID), validFilmBody("Renamed")},
		{http.MethodDelete, fmt.Sprintf("/api/v1/admin/films/%d", film.ID), nil},
		{http.MethodGet, "/api/v1/admin/tmdb/search?q=x", nil},
		{http.MethodPost, "/api/v1/admin/tmdb/import", map[string]interface{}{"tmdb_ids": []int64{1}}},
		{http.MethodPost, "/api/v1/admin/seed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			expectError(t, env.do(t, tt.method, tt.path, token, tt.body), http.StatusForbidden, ErrCodeForbidden)
		})
	}

	count, err := env.db.CountFilms(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("film count = %d, want 1", count)
	}
}

func TestAdminFilmCRUD(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.signup(t, testAdminEmail)

	var film models.Film
	rec := env.do(t, http.MethodPost, "/api/v1/admin/films", admin, validFilmBody("  Solaris  "))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body: %s", rec.Code, rec.Body.String())
	}
	decodeData(t, rec, &film)
	if film.Title != "Solaris" || film.ID == 0 {
		t.Errorf("created = %+v", film)
	}

	var updated models.Film
	decodeData(t, env.do(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/films/%d", film.ID), admin,
		validFilmBody("Solaris (1972)")), &updated)
	if updated.Title != "Solaris (1972)" {
		t.Errorf("updated title = %q", updated.Title)
	}

	if rec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/films/%d", film.ID), admin, nil); rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	expectError(t, env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/films/%d", film.ID), admin, nil), http.StatusNotFound, ErrCodeNotFound)
	expectError(t, env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/films/%d", film.ID), admin, nil), http.StatusNotFound, ErrCodeNotFound)
}

func TestAdminFilmValidationRejectsBeforeInsert(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.signup(t, testAdminEmail)

	tests := []struct {
		name  string
		edit  func(map[string]interface{})
		field string
	}{
		{name: "empty title", edit: func(b map[string]interface{}) { b["title"] = "" }, field: "title"},
		{name: "one letter title", edit: func(b map[string]interface{}) { b["title"] = " x " }, field: "title"},
		{name: "short description", edit: func(b map[string]interface{}) { b["description"] = "too short" }, field: "description"},
		{name: "relative poster", edit: func(b map[string]interface{}) { b["poster_url"] = "/poster.jpg" }, field: "poster_url"},
		{name: "bad trailer", edit: func(b map[string]interface{}) { b["trailer_url"] = "javascript:alert(1)" }, field: "trailer_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validFilmBody("Valid")
			tt.edit(body)
			apiErr := expectError(t, env.do(t, http.MethodPost, "/api/v1/admin/films", admin, body), http.StatusBadRequest, ErrCodeValidation)
			if apiErr.Details["field"] != tt.field {
				t.Errorf("details.field = %v, want %s", apiErr.Details["field"], tt.field)
			}
		})
	}

	count, err := env.db.CountFilms(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("film count = %d, want 0", count)
	}
}

func TestTMDBNotConfigured(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.signup(t, testAdminEmail)

	expectError(t, env.do(t, http.MethodGet, "/api/v1/admin/tmdb/search?q=Inception", admin, nil),
		http.StatusServiceUnavailable, ErrCodeTMDBNotConfigured)
}

func fakeTMDB(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/3/search/movie", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("query") == "nothing" {
			_, _ = w.Write([]byte(`{"results":[],"total_results":0}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[
			{"id":27205,"title":"Inception","overview":"Dreams within dreams.","poster_path":"/a.jpg","release_date":"2010-07-15","genre_ids":[28]},
			{"id":157336,"title":"Interstellar","overview":"Space and time.","poster_path":"/b.jpg","release_date":"2014-11-05","genre_ids":[878]}
		],"total_results":2}`))
	})
	mux.HandleFunc("/3/movie/157336", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":157336,"title":"Interstellar","overview":"Space and time, a long voyage.","poster_path":"/b.jpg","genres":[{"id":878,"name":"Bilim-Kurgu"}]}`))
	})
	mux.HandleFunc("/3/movie/157336/videos", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	})
	mux.HandleFunc("/3/movie/404404", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	})
	return mux
}

func TestTMDBSearchMarksImported(t *testing.T) {
	env := newTestEnv(t, fakeTMDB(t))
	admin := env.signup(t, testAdminEmail)

	tmdbID := int64(27205)
	if _, err := env.db.CreateFilm(context.Background(), &models.FilmInput{
		Title:       "Inception",
		Description: "Already in the catalog.",
		PosterURL:   "https://example.com/a.jpg",
		TMDBID:      &tmdbID,
	}); err != nil {
		t.Fatal(err)
	}

	var candidates []tmdb.Candidate
	decodeData(t, env.do(t, http.MethodGet, "/api/v1/admin/tmdb/search?q=In", admin, nil), &candidates)
	if len(candidates) != 2 {
		t.Fatalf("candidates = %+v", candidates)
	}
	if !candidates[0].Imported || candidates[1].Imported {
		t.Errorf("imported flags = %v/%v, want true/false", candidates[0].Imported, candidates[1].Imported)
	}

	expectError(t, env.do(t, http.MethodGet, "/api/v1/admin/tmdb/search?q=nothing", admin, nil),
		http.StatusNotFound, ErrCodeTMDBNoResults)
}

func TestTMDBImport(t *testing.T) {
	env := newTestEnv(t, fakeTMDB(t))
	admin := env.signup(t, testAdminEmail)

	var result models.ImportResult
	decodeData(t, env.do(t, http.MethodPost, "/api/v1/admin/tmdb/import", admin,
		map[string]interface{}{"tmdb_ids": []int64{157336, 404404, 157336}}), &result)

	if len(result.Imported) != 1 || result.Imported[0].Title != "Interstellar" {
		t.Errorf("imported = %+v", result.Imported)
	}
	if fmt.Sprint(result.Skipped) != "[157336]" {
		t.Errorf("skipped = %v", result.Skipped)
	}
	if fmt.Sprint(result.Failed) != "[404404]" {
		t.Errorf("failed = %v", result.Failed)
	}

	// A second import finds it already present.
	decodeData(t, env.do(t, http.MethodPost, "/api/v1/admin/tmdb/import", admin,
		map[string]interface{}{"tmdb_ids": []int64{157336}}), &result)
	if len(result.Imported) != 0 || fmt.Sprint(result.Skipped) != "[157336]" {
		t.Errorf("second import = %+v", result)
	}

	expectError(t, env.do(t, http.MethodPost, "/api/v1/admin/tmdb/import", admin,
		map[string]interface{}{"tmdb_ids": []int64{}}), http.StatusBadRequest, ErrCodeValidation)
}

func TestSeedCatalogOverHTTP(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := env.signup(t, testAdminEmail)

	rec := env.do(t, http.MethodPost, "/api/v1/admin/seed", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed status = %d, body: %s", rec.Code, rec.Body.String())
	}

	count, err := env.db.CountFilms(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count == 0 {
		t.Fatal("seed inserted nothing")
	}

	env.do(t, http.MethodPost, "/api/v1/admin/seed", admin, nil)
	again, err := env.db.CountFilms(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if again != count {
		t.Errorf("second seed changed count %d -> %d", count, again)
	}
}
