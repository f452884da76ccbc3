// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"context"
	"fmt"
	"time"
)

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// Relationships are enforced in Go; DuckDB foreign keys cannot cascade and
// block deletes of referenced rows.
var tableCreationQueries = []string{
	`CREATE SEQUENCE IF NOT EXISTS films_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS films (
		id BIGINT PRIMARY KEY DEFAULT nextval('films_id_seq'),
		title VARCHAR NOT NULL,
		description VARCHAR NOT NULL,
		poster_url VARCHAR NOT NULL,
		tmdb_id BIGINT UNIQUE,
		trailer_url VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS film_genres (
		film_id BIGINT NOT NULL,
		position INTEGER NOT NULL,
		genre VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id VARCHAR PRIMARY KEY,
		email VARCHAR NOT NULL UNIQUE,
		password_hash VARCHAR NOT NULL,
		role VARCHAR NOT NULL DEFAULT 'standard',
		bio VARCHAR NOT NULL DEFAULT '',
		avatar_url VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE SEQUENCE IF NOT EXISTS comments_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS comments (
		id BIGINT PRIMARY KEY DEFAULT nextval('comments_id_seq'),
		film_id BIGINT NOT NULL,
		user_id VARCHAR NOT NULL,
		text VARCHAR NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comment_likes (
		comment_id BIGINT NOT NULL,
		user_id VARCHAR NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (comment_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		user_id VARCHAR NOT NULL,
		film_id BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, film_id)
	)`,
	`CREATE TABLE IF NOT EXISTS watchlist (
		user_id VARCHAR NOT NULL,
		film_id BIGINT NOT NULL,
		status VARCHAR NOT NULL CHECK (status IN ('to_watch', 'watched')),
		watched_date TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, film_id)
	)`,
}

var indexCreationQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_film_genres_film ON film_genres(film_id)`,
	`CREATE INDEX IF NOT EXISTS idx_film_genres_genre ON film_genres(genre)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_film ON comments(film_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_user ON comments(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_films_created ON films(created_at)`,
}

func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range indexCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
