// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/filmlerim/internal/models"
)

// IsFavorite reports whether filmID is in userID's favorites.
func (db *DB) IsFavorite(ctx context.Context, userID string, filmID int64) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var fav bool
	if err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = ? AND film_id = ?)`,
		userID, filmID).Scan(&fav); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return fav, nil
}

// AddFavorite marks filmID as a favorite. Adding twice is a no-op.
func (db *DB) AddFavorite(ctx context.Context, userID string, filmID int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, `
		INSERT INTO favorites (user_id, film_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING`,
		userID, filmID, db.now()); err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes the favorite if present.
func (db *DB) RemoveFavorite(ctx context.Context, userID string, filmID int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND film_id = ?`, userID, filmID); err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}

// ListFavoriteFilms returns userID's favorite films, most recently added
// first.
func (db *DB) ListFavoriteFilms(ctx context.Context, userID string) ([]models.Film, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := filmSelect + `
JOIN favorites fav ON fav.film_id = f.id AND fav.user_id = ?` + filmGroupBy + `, fav.created_at
ORDER BY fav.created_at DESC, f.id DESC`
	return db.queryFilms(ctx, query, userID)
}
