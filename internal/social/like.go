// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package social

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/metrics"
	"github.com/tomtom215/filmlerim/internal/models"
)

type likeKey struct {
	commentID int64
	userID    string
}

// LikeToggler flips a user's like on a comment. Safe for concurrent use.
type LikeToggler struct {
	store LikeStore

	mu       sync.Mutex
	inFlight map[likeKey]struct{}
}

// NewLikeToggler creates a toggler over store.
func NewLikeToggler(store LikeStore) *LikeToggler {
	return &LikeToggler{
		store:    store,
		inFlight: make(map[likeKey]struct{}),
	}
}

func (t *LikeToggler) acquire(key likeKey) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.inFlight[key]; busy {
		return false
	}
	t.inFlight[key] = struct{}{}
	return true
}

func (t *LikeToggler) release(key likeKey) {
	t.mu.Lock()
	delete(t.inFlight, key)
	t.mu.Unlock()
}

// InFlight reports whether a toggle for the pair is running.
func (t *LikeToggler) InFlight(commentID int64, userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.inFlight[likeKey{commentID, userID}]
	return busy
}

// Toggle removes userID's like when present and adds it otherwise, then
// returns the stored state. Unknown comments return database.ErrNotFound.
func (t *LikeToggler) Toggle(ctx context.Context, commentID int64, userID string) (*models.LikeState, error) {
	key := likeKey{commentID, userID}
	if !t.acquire(key) {
		metrics.RecordLikeToggle("in_flight")
		return nil, ErrToggleInFlight
	}
	defer t.release(key)

	exists, err := t.store.CommentExists(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, database.ErrNotFound
	}

	liked, err := t.store.HasLiked(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		err = t.store.RemoveLike(ctx, commentID, userID)
	} else {
		err = t.store.AddLike(ctx, commentID, userID)
	}
	if err != nil {
		metrics.RecordLikeToggle("reconciled")
		state, readErr := t.State(ctx, commentID, userID)
		if readErr != nil {
			logging.Ctx(ctx).Error().Err(readErr).Int64("comment_id", commentID).Msg("Failed to reconcile like state")
			state = nil
		}
		return nil, &ToggleError{State: state, Err: err}
	}

	state, err := t.State(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	if state.Liked {
		metrics.RecordLikeToggle("liked")
	} else {
		metrics.RecordLikeToggle("unliked")
	}
	return state, nil
}

// State reads the stored like state for the pair.
func (t *LikeToggler) State(ctx context.Context, commentID int64, userID string) (*models.LikeState, error) {
	liked, err := t.store.HasLiked(ctx, commentID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read like: %w", err)
	}
	count, err := t.store.CountLikes(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	return &models.LikeState{CommentID: commentID, Liked: liked, LikeCount: count}, nil
}
