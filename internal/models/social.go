// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package models

import "time"

// Comment is a star-rated review of a film. LikedByMe is relative to the
// user who loaded it.
type Comment struct {
	ID          int64     `json:"id"`
	FilmID      int64     `json:"film_id"`
	UserID      string    `json:"user_id"`
	AuthorEmail string    `json:"author_email"`
	Text        string    `json:"text"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LikeCount   int       `json:"like_count"`
	LikedByMe   bool      `json:"liked_by_me"`
}

// CommentInput holds the writable fields of a comment.
type CommentInput struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// LikeState is the server's view of one user's like on one comment.
type LikeState struct {
	CommentID int64 `json:"comment_id"`
	Liked     bool  `json:"liked"`
	LikeCount int   `json:"like_count"`
}

// FavoriteState is the result of toggling a favorite.
type FavoriteState struct {
	FilmID     int64 `json:"film_id"`
	IsFavorite bool  `json:"is_favorite"`
}

// WatchStatus is the state of a watchlist entry.
type WatchStatus string

const (
	WatchStatusToWatch WatchStatus = "to_watch"
	WatchStatusWatched WatchStatus = "watched"
)

// Valid reports whether s is a known status.
func (s WatchStatus) Valid() bool {
	return s == WatchStatusToWatch || s == WatchStatusWatched
}

// WatchlistEntry is a user's single row for a film.
type WatchlistEntry struct {
	UserID      string      `json:"user_id"`
	FilmID      int64       `json:"film_id"`
	Status      WatchStatus `json:"status"`
	WatchedDate *time.Time  `json:"watched_date,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Film        *Film       `json:"film,omitempty"`
}

// WatchlistState is the result of setting a watchlist status; Entry is nil
// when the entry was removed.
type WatchlistState struct {
	FilmID int64           `json:"film_id"`
	Entry  *WatchlistEntry `json:"entry"`
}

// WatchlistView is the watchlist screen for one status tab.
type WatchlistView struct {
	Entries []WatchlistEntry    `json:"entries"`
	Counts  map[WatchStatus]int `json:"counts"`
}
