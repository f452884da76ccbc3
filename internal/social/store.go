// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package social

import (
	"context"

	"github.com/tomtom215/filmlerim/internal/models"
)

// LikeStore is the persistence behind LikeToggler.
type LikeStore interface {
	CommentExists(ctx context.Context, commentID int64) (bool, error)
	HasLiked(ctx context.Context, commentID int64, userID string) (bool, error)
	AddLike(ctx context.Context, commentID int64, userID string) error
	RemoveLike(ctx context.Context, commentID int64, userID string) error
	CountLikes(ctx context.Context, commentID int64) (int, error)
}

// Store is everything Service needs. *database.DB implements it.
type Store interface {
	LikeStore

	GetFilm(ctx context.Context, id int64) (*models.Film, error)

	IsFavorite(ctx context.Context, userID string, filmID int64) (bool, error)
	AddFavorite(ctx context.Context, userID string, filmID int64) error
	RemoveFavorite(ctx context.Context, userID string, filmID int64) error

	GetWatchlistEntry(ctx context.Context, userID string, filmID int64) (*models.WatchlistEntry, error)
	UpsertWatchlistEntry(ctx context.Context, userID string, filmID int64, status models.WatchStatus) (*models.WatchlistEntry, error)
	DeleteWatchlistEntry(ctx context.Context, userID string, filmID int64) error

	GetComment(ctx context.Context, id int64, viewerID string) (*models.Comment, error)
	CreateComment(ctx context.Context, filmID int64, userID string, in *models.CommentInput) (*models.Comment, error)
	UpdateComment(ctx context.Context, id int64, in *models.CommentInput) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
