// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/filmlerim/internal/models"
)

// GetWatchlistEntry returns userID's entry for filmID, or ErrNotFound.
func (db *DB) GetWatchlistEntry(ctx context.Context, userID string, filmID int64) (*models.WatchlistEntry, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var e models.WatchlistEntry
	var status string
	var watched sql.NullTime
	err := db.conn.QueryRowContext(ctx, `
		SELECT user_id, film_id, status, watched_date, updated_at
		FROM watchlist WHERE user_id = ? AND film_id = ?`, userID, filmID,
	).Scan(&e.UserID, &e.FilmID, &status, &watched, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist entry: %w", err)
	}
	e.Status = models.WatchStatus(status)
	if watched.Valid {
		t := watched.Time
		e.WatchedDate = &t
	}
	return &e, nil
}

// UpsertWatchlistEntry writes the single row for (userID, filmID).
// watched_date is stamped when status is watched and cleared otherwise.
func (db *DB) UpsertWatchlistEntry(ctx context.Context, userID string, filmID int64, status models.WatchStatus) (*models.WatchlistEntry, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := db.now()
	var watched interface{}
	if status == models.WatchStatusWatched {
		watched = now
	}

	if _, err := db.conn.ExecContext(ctx, `
		INSERT INTO watchlist (user_id, film_id, status, watched_date, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, film_id) DO UPDATE SET
			status = excluded.status,
			watched_date = excluded.watched_date,
			updated_at = excluded.updated_at`,
		userID, filmID, string(status), watched, now); err != nil {
		return nil, fmt.Errorf("failed to upsert watchlist entry: %w", err)
	}
	return db.GetWatchlistEntry(ctx, userID, filmID)
}

// DeleteWatchlistEntry removes the entry if present.
func (db *DB) DeleteWatchlistEntry(ctx context.Context, userID string, filmID int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM watchlist WHERE user_id = ? AND film_id = ?`, userID, filmID); err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}
	return nil
}

// ListWatchlist returns userID's entries with their films, most recently
// updated first. An empty status returns every entry.
func (db *DB) ListWatchlist(ctx context.Context, userID string, status models.WatchStatus) ([]models.WatchlistEntry, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT user_id, film_id, status, watched_date, updated_at FROM watchlist WHERE user_id = ?`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY updated_at DESC, film_id DESC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer closeWithLog(rows, "watchlist rows")

	entries := []models.WatchlistEntry{}
	for rows.Next() {
		var e models.WatchlistEntry
		var s string
		var watched sql.NullTime
		if err := rows.Scan(&e.UserID, &e.FilmID, &s, &watched, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		e.Status = models.WatchStatus(s)
		if watched.Valid {
			t := watched.Time
			e.WatchedDate = &t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist: %w", err)
	}

	if err := db.attachWatchlistFilms(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (db *DB) attachWatchlistFilms(ctx context.Context, entries []models.WatchlistEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		film, err := db.GetFilm(ctx, entries[i].FilmID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		entries[i].Film = film
	}
	return nil
}

// CountWatchlistByStatus returns the number of entries per status for
// userID. Both statuses are always present.
func (db *DB) CountWatchlistByStatus(ctx context.Context, userID string) (map[models.WatchStatus]int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	counts := map[models.WatchStatus]int{
		models.WatchStatusToWatch: 0,
		models.WatchStatusWatched: 0,
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM watchlist WHERE user_id = ? GROUP BY status`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count watchlist: %w", err)
	}
	defer closeWithLog(rows, "watchlist count rows")

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist count: %w", err)
		}
		counts[models.WatchStatus(status)] = n
	}
	return counts, rows.Err()
}
