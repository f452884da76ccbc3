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
	"strings"
	"time"

	"github.com/tomtom215/filmlerim/internal/metrics"
	"github.com/tomtom215/filmlerim/internal/models"
)

// FilmFilter narrows ListFilms. Genre requires exact tag membership; an
// empty Genre matches everything. Text search happens in catalog.Filter,
// which folds case the Unicode way.
type FilmFilter struct {
	Genre string
}

// filmSelect joins the rating aggregate onto each film.
const filmSelect = `
SELECT f.id, f.title, f.description, f.poster_url, f.tmdb_id, f.trailer_url,
       f.created_at, f.updated_at,
       COALESCE(AVG(c.rating), 0)::DOUBLE AS average_rating,
       COUNT(c.id) AS comment_count
FROM films f
LEFT JOIN comments c ON c.film_id = f.id`

const filmGroupBy = `
GROUP BY f.id, f.title, f.description, f.poster_url, f.tmdb_id, f.trailer_url, f.created_at, f.updated_at`

// buildFilmConditions returns the WHERE clause for filter.
func buildFilmConditions(filter FilmFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if genre := strings.TrimSpace(filter.Genre); genre != "" {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM film_genres g WHERE g.film_id = f.id AND g.genre = ?)")
		args = append(args, genre)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// ListFilms returns the films matching filter, newest first, with genres
// and rating aggregates populated.
func (db *DB) ListFilms(ctx context.Context, filter FilmFilter) ([]models.Film, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	where, args := buildFilmConditions(filter)
	query := filmSelect + where + filmGroupBy + `
ORDER BY f.created_at DESC, f.id DESC`

	return db.queryFilms(ctx, query, args...)
}

// ListLatestFilms returns up to limit films, newest first.
func (db *DB) ListLatestFilms(ctx context.Context, limit int) ([]models.Film, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := filmSelect + filmGroupBy + `
ORDER BY f.created_at DESC, f.id DESC
LIMIT ?`
	return db.queryFilms(ctx, query, limit)
}

// ListTopRatedFilms returns up to limit films that have at least one
// comment, best average first.
func (db *DB) ListTopRatedFilms(ctx context.Context, limit int) ([]models.Film, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := filmSelect + filmGroupBy + `
HAVING COUNT(c.id) > 0
ORDER BY average_rating DESC, comment_count DESC, f.id ASC
LIMIT ?`
	return db.queryFilms(ctx, query, limit)
}

// GetFilm returns a single film or ErrNotFound.
func (db *DB) GetFilm(ctx context.Context, id int64) (*models.Film, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := filmSelect + " WHERE f.id = ?" + filmGroupBy
	films, err := db.queryFilms(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, ErrNotFound
	}
	return &films[0], nil
}

func (db *DB) queryFilms(ctx context.Context, query string, args ...interface{}) (_ []models.Film, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "films", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer closeWithLog(rows, "film rows")

	films := []models.Film{}
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, *film)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating films: %w", err)
	}
	if err := db.attachGenres(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFilm(row rowScanner) (*models.Film, error) {
	var f models.Film
	var tmdbID sql.NullInt64
	if err := row.Scan(&f.ID, &f.Title, &f.Description, &f.PosterURL, &tmdbID, &f.TrailerURL,
		&f.CreatedAt, &f.UpdatedAt, &f.AverageRating, &f.CommentCount); err != nil {
		return nil, fmt.Errorf("failed to scan film: %w", err)
	}
	if tmdbID.Valid {
		id := tmdbID.Int64
		f.TMDBID = &id
	}
	f.Genres = []string{}
	return &f, nil
}

// attachGenres loads genre tags for films in one query.
func (db *DB) attachGenres(ctx context.Context, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}

	index := make(map[int64]int, len(films))
	placeholders := make([]string, len(films))
	args := make([]interface{}, len(films))
	for i := range films {
		index[films[i].ID] = i
		placeholders[i] = "?"
		args[i] = films[i].ID
	}

	query := `SELECT film_id, genre FROM film_genres WHERE film_id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY film_id, position`
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query film genres: %w", err)
	}
	defer closeWithLog(rows, "genre rows")

	for rows.Next() {
		var filmID int64
		var genre string
		if err := rows.Scan(&filmID, &genre); err != nil {
			return fmt.Errorf("failed to scan film genre: %w", err)
		}
		if i, ok := index[filmID]; ok {
			films[i].Genres = append(films[i].Genres, genre)
		}
	}
	return rows.Err()
}

// ListGenres returns every distinct genre in the catalog, alphabetically.
func (db *DB) ListGenres(ctx context.Context) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `SELECT DISTINCT genre FROM film_genres ORDER BY genre`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer closeWithLog(rows, "genre rows")

	genres := []string{}
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// CreateFilm inserts a film and its genres. A duplicate TMDB id returns
// ErrConflict.
func (db *DB) CreateFilm(ctx context.Context, in *models.FilmInput) (*models.Film, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := db.now()
	var id int64
	err := db.withTx(ctx, "insert", "films", func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO films (title, description, poster_url, tmdb_id, trailer_url, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
			in.Title, in.Description, in.PosterURL, nullableInt64(in.TMDBID), in.TrailerURL, now, now,
		).Scan(&id)
		if err != nil {
			if isConstraintViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to insert film: %w", err)
		}
		return insertGenres(ctx, tx, id, in.Genres)
	})
	if err != nil {
		return nil, err
	}
	return db.GetFilm(ctx, id)
}

// UpdateFilm replaces a film's editable fields and genres. The TMDB id is
// fixed at creation.
func (db *DB) UpdateFilm(ctx context.Context, id int64, in *models.FilmInput) (*models.Film, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	err := db.withTx(ctx, "update", "films", func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE films SET title = ?, description = ?, poster_url = ?, trailer_url = ?, updated_at = ?
			WHERE id = ?`,
			in.Title, in.Description, in.PosterURL, in.TrailerURL, db.now(), id)
		if err != nil {
			return fmt.Errorf("failed to update film: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM film_genres WHERE film_id = ?`, id); err != nil {
			return fmt.Errorf("failed to clear film genres: %w", err)
		}
		return insertGenres(ctx, tx, id, in.Genres)
	})
	if err != nil {
		return nil, err
	}
	return db.GetFilm(ctx, id)
}

// DeleteFilm removes a film together with its genres, comments, likes on
// those comments, favorites and watchlist entries.
func (db *DB) DeleteFilm(ctx context.Context, id int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	return db.withTx(ctx, "delete", "films", func(tx *sql.Tx) error {
		cascades := []struct {
			query string
			what  string
		}{
			{`DELETE FROM comment_likes WHERE comment_id IN (SELECT id FROM comments WHERE film_id = ?)`, "comment likes"},
			{`DELETE FROM comments WHERE film_id = ?`, "comments"},
			{`DELETE FROM favorites WHERE film_id = ?`, "favorites"},
			{`DELETE FROM watchlist WHERE film_id = ?`, "watchlist entries"},
			{`DELETE FROM film_genres WHERE film_id = ?`, "film genres"},
		}
		for _, c := range cascades {
			if _, err := tx.ExecContext(ctx, c.query, id); err != nil {
				return fmt.Errorf("failed to delete %s: %w", c.what, err)
			}
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM films WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete film: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ExistingTMDBIDs returns the subset of ids already present in the catalog.
func (db *DB) ExistingTMDBIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool)
	if len(ids) == 0 {
		return existing, nil
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT tmdb_id FROM films WHERE tmdb_id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tmdb ids: %w", err)
	}
	defer closeWithLog(rows, "tmdb id rows")

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tmdb id: %w", err)
		}
		existing[id] = true
	}
	return existing, rows.Err()
}

// FilmExistsByTitle reports whether a film with exactly this title exists.
func (db *DB) FilmExistsByTitle(ctx context.Context, title string) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var exists bool
	err := db.conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM films WHERE title = ?)`, title).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to check film title: %w", err)
	}
	return exists, nil
}

// CountFilms returns the catalog size.
func (db *DB) CountFilms(ctx context.Context) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var n int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM films`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count films: %w", err)
	}
	return n, nil
}

// insertGenres stores genres in order, skipping blanks and repeats.
func insertGenres(ctx context.Context, tx *sql.Tx, filmID int64, genres []string) error {
	seen := make(map[string]bool, len(genres))
	position := 0
	for _, genre := range genres {
		genre = strings.TrimSpace(genre)
		if genre == "" || seen[genre] {
			continue
		}
		seen[genre] = true
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO film_genres (film_id, position, genre) VALUES (?, ?, ?)`,
			filmID, position, genre); err != nil {
			return fmt.Errorf("failed to insert film genre: %w", err)
		}
		position++
	}
	return nil
}

func nullableInt64(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
