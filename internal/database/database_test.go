// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/models"
)

// testDBSemaphore keeps DuckDB CGO work to one test at a time.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "1GB",
		Threads:   1,
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

// steppingClock returns a clock that advances one minute per call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Minute)
		return current
	}
}

func createTestFilm(t *testing.T, db *DB, title string, genres ...string) *models.Film {
	t.Helper()
	film, err := db.CreateFilm(context.Background(), &models.FilmInput{
		Title:       title,
		Description: "A description long enough for " + title,
		PosterURL:   "https://image.tmdb.org/t/p/w500/" + title + ".jpg",
		Genres:      genres,
	})
	if err != nil {
		t.Fatalf("CreateFilm(%q) error = %v", title, err)
	}
	return film
}

func createTestProfile(t *testing.T, db *DB, id, email string) *models.Profile {
	t.Helper()
	p := &models.Profile{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		Preferences:  models.Preferences{Theme: "light", Language: "tr"},
	}
	if err := db.CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("CreateProfile(%q) error = %v", email, err)
	}
	return p
}

func TestNewAppliesMigrations(t *testing.T) {
	db := setupTestDB(t)

	version, err := db.CurrentSchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("CurrentSchemaVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("schema version = %d, want 2", version)
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestNewFileDatabaseReopens(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	path := filepath.Join(t.TempDir(), "nested", "filmlerim.duckdb")
	cfg := &config.DatabaseConfig{Path: path, MaxMemory: "512MB", Threads: 1, SkipIndexes: true}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	createTestFilm(t, db, "Inception")
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err = New(cfg)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()

	n, err := db.CountFilms(context.Background())
	if err != nil {
		t.Fatalf("CountFilms() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountFilms() = %d after reopen, want 1", n)
	}
}

func TestEnsureContextAddsDeadline(t *testing.T) {
	db := &DB{}

	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("expected a deadline on a background context")
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
	defer parentCancel()
	ctx2, cancel2 := db.ensureContext(parent)
	defer cancel2()
	if ctx2 != parent {
		t.Error("expected the caller's context to be reused when it has a deadline")
	}
}
