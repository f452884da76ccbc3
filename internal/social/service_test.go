// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package social

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/websocket"
)

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeStore(1), nil)
	ctx := context.Background()

	on, err := svc.ToggleFavorite(ctx, "u1", 1)
	if err != nil || !on.IsFavorite {
		t.Fatalf("first toggle = %+v, %v", on, err)
	}
	off, err := svc.ToggleFavorite(ctx, "u1", 1)
	if err != nil || off.IsFavorite {
		t.Fatalf("second toggle = %+v, %v", off, err)
	}

	if _, err := svc.ToggleFavorite(ctx, "u1", 42); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("unknown film = %v, want ErrNotFound", err)
	}
}

func TestSetWatchlistStatus(t *testing.T) {
	t.Parallel()

	store := newFakeStore(1)
	svc := NewService(store, nil)
	ctx := context.Background()

	steps := []struct {
		status     models.WatchStatus
		wantStatus models.WatchStatus // empty means removed
	}{
		{models.WatchStatusToWatch, models.WatchStatusToWatch},
		{models.WatchStatusWatched, models.WatchStatusWatched},
		{models.WatchStatusWatched, ""},
		{models.WatchStatusWatched, models.WatchStatusWatched},
		{models.WatchStatusToWatch, models.WatchStatusToWatch},
		{models.WatchStatusToWatch, ""},
	}

	for i, step := range steps {
		state, err := svc.SetWatchlistStatus(ctx, "u1", 1, step.status)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if step.wantStatus == "" {
			if state.Entry != nil {
				t.Errorf("step %d: entry = %+v, want removed", i, state.Entry)
			}
			if _, err := store.GetWatchlistEntry(ctx, "u1", 1); !errors.Is(err, database.ErrNotFound) {
				t.Errorf("step %d: entry still stored", i)
			}
			continue
		}
		if state.Entry == nil || state.Entry.Status != step.wantStatus {
			t.Errorf("step %d: entry = %+v, want %s", i, state.Entry, step.wantStatus)
		}
		if (step.wantStatus == models.WatchStatusWatched) != (state.Entry.WatchedDate != nil) {
			t.Errorf("step %d: watched date = %v", i, state.Entry.WatchedDate)
		}
	}
}

func TestSetWatchlistStatusRejects(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeStore(1), nil)
	ctx := context.Background()

	if _, err := svc.SetWatchlistStatus(ctx, "u1", 1, "seen"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("bad status = %v", err)
	}
	if _, err := svc.SetWatchlistStatus(ctx, "u1", 2, models.WatchStatusWatched); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("unknown film = %v", err)
	}
}

func TestCommentOwnership(t *testing.T) {
	t.Parallel()

	events := &recorder{}
	svc := NewService(newFakeStore(1), events)
	ctx := context.Background()

	c, err := svc.CreateComment(ctx, 1, "author", &models.CommentInput{Text: "Loved it", Rating: 4})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if _, err := svc.UpdateComment(ctx, c.ID, "intruder", &models.CommentInput{Text: "Hacked", Rating: 1}); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign update = %v, want ErrForbidden", err)
	}
	if err := svc.DeleteComment(ctx, c.ID, "intruder"); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign delete = %v, want ErrForbidden", err)
	}

	updated, err := svc.UpdateComment(ctx, c.ID, "author", &models.CommentInput{Text: "Loved it more", Rating: 5})
	if err != nil || updated.Rating != 5 {
		t.Fatalf("own update = %+v, %v", updated, err)
	}
	if err := svc.DeleteComment(ctx, c.ID, "author"); err != nil {
		t.Fatalf("own delete: %v", err)
	}
	if err := svc.DeleteComment(ctx, c.ID, "author"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}

	want := strings.Join([]string{
		websocket.MessageTypeCommentCreated,
		websocket.MessageTypeCommentUpdated,
		websocket.MessageTypeCommentDeleted,
	}, ",")
	if got := strings.Join(events.types(), ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}

func TestToggleLikePublishes(t *testing.T) {
	t.Parallel()

	store, commentID := storeWithComment(t)
	events := &recorder{}
	svc := NewService(store, events)

	state, err := svc.ToggleLike(context.Background(), commentID, "u1")
	if err != nil || !state.Liked {
		t.Fatalf("ToggleLike = %+v, %v", state, err)
	}
	if got := events.types(); len(got) != 1 || got[0] != websocket.MessageTypeLikeToggled {
		t.Errorf("events = %v", got)
	}

	store.failWrites = true
	if _, err := svc.ToggleLike(context.Background(), commentID, "u1"); err == nil {
		t.Fatal("expected failure")
	}
	if len(events.types()) != 1 {
		t.Error("failed toggle must not publish")
	}
}
