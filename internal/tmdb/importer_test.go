// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package tmdb

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/models"
)

type fakeSource struct {
	errs   map[int64]error
	inputs map[int64]*models.FilmInput
	calls  []int64
}

func (f *fakeSource) FilmInput(_ context.Context, id int64) (*models.FilmInput, error) {
	f.calls = append(f.calls, id)
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	if in := f.inputs[id]; in != nil {
		return in, nil
	}
	tmdbID := id
	return &models.FilmInput{
		Title:       "Imported film",
		Description: "An overview long enough to keep.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/poster.jpg",
		Genres:      []string{"Drama"},
		TMDBID:      &tmdbID,
	}, nil
}

type fakeStore struct {
	existing  map[int64]bool
	conflicts map[int64]bool
	created   []int64
	nextID    int64
}

func (f *fakeStore) ExistingTMDBIDs(_ context.Context, ids []int64) (map[int64]bool, error) {
	out := map[int64]bool{}
	for _, id := range ids {
		if f.existing[id] {
			out[id] = true
		}
	}
	return out, nil
}

func (f *fakeStore) CreateFilm(_ context.Context, in *models.FilmInput) (*models.Film, error) {
	if f.conflicts[*in.TMDBID] {
		return nil, database.ErrConflict
	}
	f.nextID++
	f.created = append(f.created, *in.TMDBID)
	return &models.Film{ID: f.nextID, Title: in.Title, TMDBID: in.TMDBID}, nil
}

func TestImport(t *testing.T) {
	t.Parallel()

	source := &fakeSource{errs: map[int64]error{404: ErrNoResults}}
	store := &fakeStore{existing: map[int64]bool{2: true}, conflicts: map[int64]bool{5: true}}

	result, err := NewImporter(source, store).Import(context.Background(), []int64{1, 2, 404, 1, 5, 3})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(result.Imported) != 2 || *result.Imported[0].TMDBID != 1 || *result.Imported[1].TMDBID != 3 {
		t.Errorf("Imported = %+v", result.Imported)
	}
	if !equalIDs(result.Skipped, []int64{2, 1, 5}) {
		t.Errorf("Skipped = %v, want [2 1 5]", result.Skipped)
	}
	if !equalIDs(result.Failed, []int64{404}) {
		t.Errorf("Failed = %v, want [404]", result.Failed)
	}
	if !equalIDs(source.calls, []int64{1, 404, 5, 3}) {
		t.Errorf("source calls = %v", source.calls)
	}
	if result.Reasons[404] == "" {
		t.Errorf("Reasons = %v, want a reason for 404", result.Reasons)
	}
}

func TestImportRejectsInvalidFilm(t *testing.T) {
	t.Parallel()

	bare := int64(7)
	source := &fakeSource{inputs: map[int64]*models.FilmInput{
		7: {Title: "No Overview", Description: "", PosterURL: "", TMDBID: &bare},
	}}
	store := &fakeStore{}

	result, err := NewImporter(source, store).Import(context.Background(), []int64{7, 8})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if !equalIDs(store.created, []int64{8}) {
		t.Errorf("created = %v, want [8]", store.created)
	}
	if !equalIDs(result.Failed, []int64{7}) {
		t.Errorf("Failed = %v, want [7]", result.Failed)
	}
	if got, want := result.Reasons[7], "description is required"; got != want {
		t.Errorf("Reasons[7] = %q, want %q", got, want)
	}
	if len(result.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", result.Skipped)
	}
}

func TestImportStopsOnUpstreamError(t *testing.T) {
	t.Parallel()

	source := &fakeSource{errs: map[int64]error{2: ErrUnavailable}}
	store := &fakeStore{}

	result, err := NewImporter(source, store).Import(context.Background(), []int64{1, 2, 3})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Import err = %v, want ErrUnavailable", err)
	}
	if len(result.Imported) != 1 || !equalIDs(store.created, []int64{1}) {
		t.Errorf("partial result = %+v, created %v", result, store.created)
	}
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
