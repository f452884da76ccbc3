// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package social

import (
	"context"
	"errors"

	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/metrics"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/websocket"
)

// Service performs social mutations for authenticated users.
type Service struct {
	store  Store
	likes  *LikeToggler
	events websocket.Broadcaster
}

// NewService creates a service. A nil events discards notifications.
func NewService(store Store, events websocket.Broadcaster) *Service {
	if events == nil {
		events = websocket.Nop{}
	}
	return &Service{
		store:  store,
		likes:  NewLikeToggler(store),
		events: events,
	}
}

// Likes returns the service's like toggler.
func (s *Service) Likes() *LikeToggler {
	return s.likes
}

func (s *Service) requireFilm(ctx context.Context, filmID int64) error {
	_, err := s.store.GetFilm(ctx, filmID)
	return err
}

// ToggleFavorite adds filmID to the user's favorites, or removes it when
// already present.
func (s *Service) ToggleFavorite(ctx context.Context, userID string, filmID int64) (*models.FavoriteState, error) {
	if err := s.requireFilm(ctx, filmID); err != nil {
		return nil, err
	}

	isFav, err := s.store.IsFavorite(ctx, userID, filmID)
	if err != nil {
		return nil, err
	}
	if isFav {
		err = s.store.RemoveFavorite(ctx, userID, filmID)
	} else {
		err = s.store.AddFavorite(ctx, userID, filmID)
	}
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Int64("film_id", filmID).Bool("favorite", !isFav).Msg("Favorite toggled")
	return &models.FavoriteState{FilmID: filmID, IsFavorite: !isFav}, nil
}

// SetWatchlistStatus sets the user's status for filmID. Choosing the
// status the entry already has removes the entry.
func (s *Service) SetWatchlistStatus(ctx context.Context, userID string, filmID int64, status models.WatchStatus) (*models.WatchlistState, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := s.requireFilm(ctx, filmID); err != nil {
		return nil, err
	}

	current, err := s.store.GetWatchlistEntry(ctx, userID, filmID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	if current != nil && current.Status == status {
		if err := s.store.DeleteWatchlistEntry(ctx, userID, filmID); err != nil {
			return nil, err
		}
		return &models.WatchlistState{FilmID: filmID}, nil
	}

	entry, err := s.store.UpsertWatchlistEntry(ctx, userID, filmID, status)
	if err != nil {
		return nil, err
	}
	return &models.WatchlistState{FilmID: filmID, Entry: entry}, nil
}

// CreateComment adds a comment by userID on filmID.
func (s *Service) CreateComment(ctx context.Context, filmID int64, userID string, in *models.CommentInput) (*models.Comment, error) {
	comment, err := s.store.CreateComment(ctx, filmID, userID, in)
	if err != nil {
		return nil, err
	}
	metrics.RecordCommentMutation("create")
	s.events.BroadcastJSON(websocket.MessageTypeCommentCreated, comment)
	return comment, nil
}

// ownComment loads the comment and checks userID wrote it.
func (s *Service) ownComment(ctx context.Context, commentID int64, userID string) (*models.Comment, error) {
	comment, err := s.store.GetComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrForbidden
	}
	return comment, nil
}

// UpdateComment rewrites the text and rating of the user's own comment.
func (s *Service) UpdateComment(ctx context.Context, commentID int64, userID string, in *models.CommentInput) (*models.Comment, error) {
	if _, err := s.ownComment(ctx, commentID, userID); err != nil {
		return nil, err
	}
	comment, err := s.store.UpdateComment(ctx, commentID, in)
	if err != nil {
		return nil, err
	}
	metrics.RecordCommentMutation("update")
	s.events.BroadcastJSON(websocket.MessageTypeCommentUpdated, comment)
	return comment, nil
}

// CommentDeleted is the websocket payload for comment_deleted.
type CommentDeleted struct {
	ID     int64 `json:"id"`
	FilmID int64 `json:"film_id"`
}

// DeleteComment removes the user's own comment and its likes.
func (s *Service) DeleteComment(ctx context.Context, commentID int64, userID string) error {
	comment, err := s.ownComment(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	metrics.RecordCommentMutation("delete")
	s.events.BroadcastJSON(websocket.MessageTypeCommentDeleted, CommentDeleted{ID: commentID, FilmID: comment.FilmID})
	return nil
}

// ToggleLike flips the user's like on commentID. See LikeToggler.Toggle.
func (s *Service) ToggleLike(ctx context.Context, commentID int64, userID string) (*models.LikeState, error) {
	state, err := s.likes.Toggle(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	s.events.BroadcastJSON(websocket.MessageTypeLikeToggled, state)
	return state, nil
}
