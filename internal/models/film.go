// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package models

import "time"

// Film is a catalog entry. AverageRating and CommentCount are derived from
// the film's comments when it is loaded.
type Film struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PosterURL     string    `json:"poster_url"`
	Genres        []string  `json:"genres"`
	TMDBID        *int64    `json:"tmdb_id,omitempty"`
	TrailerURL    string    `json:"trailer_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	AverageRating float64   `json:"average_rating"`
	CommentCount  int       `json:"comment_count"`
}

// HasGenre reports exact membership of genre in the film's tags.
func (f *Film) HasGenre(genre string) bool {
	for _, g := range f.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// FilmInput holds the writable fields of a film.
type FilmInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PosterURL   string   `json:"poster_url"`
	Genres      []string `json:"genres"`
	TMDBID      *int64   `json:"tmdb_id,omitempty"`
	TrailerURL  string   `json:"trailer_url,omitempty"`
}

// FilmDetail is the film screen: the film, its comments newest first and
// the viewer's own relationship to it.
type FilmDetail struct {
	Film            Film         `json:"film"`
	RatingLabel     string       `json:"rating_label"`
	Comments        []Comment    `json:"comments"`
	IsFavorite      bool         `json:"is_favorite"`
	WatchlistStatus *WatchStatus `json:"watchlist_status,omitempty"`
}

// HomeFeed is the landing screen.
type HomeFeed struct {
	Latest   []Film `json:"latest"`
	TopRated []Film `json:"top_rated"`
}

// FilmPage is one page of the catalog listing.
type FilmPage struct {
	Films []Film `json:"films"`
	Pagination
}

// ImportResult reports a bulk TMDB import.
type ImportResult struct {
	Imported []Film  `json:"imported"`
	Skipped  []int64 `json:"skipped"`
	Failed   []int64 `json:"failed,omitempty"`
	// Reasons explains each failed id, keyed by TMDB id.
	Reasons map[int64]string `json:"reasons,omitempty"`
}
