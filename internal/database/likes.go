// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"context"
	"fmt"
)

// HasLiked reports whether userID currently likes commentID.
func (db *DB) HasLiked(ctx context.Context, commentID int64, userID string) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var liked bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM comment_likes WHERE comment_id = ? AND user_id = ?)`,
		commentID, userID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return liked, nil
}

// AddLike records a like. Liking twice is a no-op.
func (db *DB) AddLike(ctx context.Context, commentID int64, userID string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO comment_likes (comment_id, user_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING`,
		commentID, userID, db.now())
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// RemoveLike deletes a like if present.
func (db *DB) RemoveLike(ctx context.Context, commentID int64, userID string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE comment_id = ? AND user_id = ?`,
		commentID, userID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// CountLikes returns the number of likes on commentID.
func (db *DB) CountLikes(ctx context.Context, commentID int64) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int
	if err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comment_likes WHERE comment_id = ?`, commentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

// CommentExists reports whether commentID exists.
func (db *DB) CommentExists(ctx context.Context, commentID int64) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var exists bool
	if err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM comments WHERE id = ?)`, commentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check comment: %w", err)
	}
	return exists, nil
}
