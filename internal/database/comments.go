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
	"time"

	"github.com/tomtom215/filmlerim/internal/metrics"
	"github.com/tomtom215/filmlerim/internal/models"
)

// commentSelect takes the viewer's user id as its first argument for the
// liked_by_me column.
const commentSelect = `
SELECT c.id, c.film_id, c.user_id, COALESCE(p.email, '') AS author_email,
       c.text, c.rating, c.created_at, c.updated_at,
       (SELECT COUNT(*) FROM comment_likes l WHERE l.comment_id = c.id) AS like_count,
       EXISTS (SELECT 1 FROM comment_likes l WHERE l.comment_id = c.id AND l.user_id = ?) AS liked_by_me
FROM comments c
LEFT JOIN profiles p ON p.id = c.user_id`

func scanComment(row rowScanner) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(&c.ID, &c.FilmID, &c.UserID, &c.AuthorEmail, &c.Text, &c.Rating,
		&c.CreatedAt, &c.UpdatedAt, &c.LikeCount, &c.LikedByMe); err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *DB) queryComments(ctx context.Context, query string, args ...interface{}) (_ []models.Comment, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "comments", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer closeWithLog(rows, "comment rows")

	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}

// ListCommentsByFilm returns a film's comments newest first, with like
// counts and whether viewerID liked each one.
func (db *DB) ListCommentsByFilm(ctx context.Context, filmID int64, viewerID string) ([]models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.queryComments(ctx, commentSelect+`
WHERE c.film_id = ?
ORDER BY c.created_at DESC, c.id DESC`, viewerID, filmID)
}

// ListCommentsByUser returns every comment written by userID, newest first.
func (db *DB) ListCommentsByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.queryComments(ctx, commentSelect+`
WHERE c.user_id = ?
ORDER BY c.created_at DESC, c.id DESC`, userID, userID)
}

// GetComment returns a comment as seen by viewerID, or ErrNotFound.
func (db *DB) GetComment(ctx context.Context, id int64, viewerID string) (*models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	c, err := scanComment(db.conn.QueryRowContext(ctx, commentSelect+` WHERE c.id = ?`, viewerID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

// CreateComment inserts a comment on filmID. Returns ErrNotFound when the
// film does not exist.
func (db *DB) CreateComment(ctx context.Context, filmID int64, userID string, in *models.CommentInput) (*models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var id int64
	err := db.withTx(ctx, "insert", "comments", func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM films WHERE id = ?)`, filmID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check film: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		now := db.now()
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO comments (film_id, user_id, text, rating, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id`,
			filmID, userID, in.Text, in.Rating, now, now,
		).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return db.GetComment(ctx, id, userID)
}

// UpdateComment rewrites a comment's text and rating.
func (db *DB) UpdateComment(ctx context.Context, id int64, in *models.CommentInput) (*models.Comment, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE comments SET text = ?, rating = ?, updated_at = ? WHERE id = ?`,
		in.Text, in.Rating, db.now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	var userID string
	if err := db.conn.QueryRowContext(ctx, `SELECT user_id FROM comments WHERE id = ?`, id).Scan(&userID); err != nil {
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}
	return db.GetComment(ctx, id, userID)
}

// DeleteComment removes a comment and its likes.
func (db *DB) DeleteComment(ctx context.Context, id int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.withTx(ctx, "delete", "comments", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM comment_likes WHERE comment_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete comment likes: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
