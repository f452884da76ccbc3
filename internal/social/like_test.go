// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package social

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/models"
)

func storeWithComment(t *testing.T) (*fakeStore, int64) {
	t.Helper()
	store := newFakeStore(1)
	c, err := store.CreateComment(context.Background(), 1, "author", &models.CommentInput{Text: "Great film", Rating: 5})
	if err != nil {
		t.Fatal(err)
	}
	return store, c.ID
}

func TestToggleTwiceRestoresState(t *testing.T) {
	t.Parallel()

	store, commentID := storeWithComment(t)
	toggler := NewLikeToggler(store)
	ctx := context.Background()

	first, err := toggler.Toggle(ctx, commentID, "u1")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Liked || first.LikeCount != 1 {
		t.Errorf("after first toggle = %+v", first)
	}

	if _, err := toggler.Toggle(ctx, commentID, "u2"); err != nil {
		t.Fatalf("other user toggle: %v", err)
	}

	second, err := toggler.Toggle(ctx, commentID, "u1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Liked || second.LikeCount != 1 {
		t.Errorf("after second toggle = %+v, want unliked with u2's like", second)
	}
}

func TestToggleUnknownComment(t *testing.T) {
	t.Parallel()

	toggler := NewLikeToggler(newFakeStore())
	if _, err := toggler.Toggle(context.Background(), 99, "u1"); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("Toggle = %v, want ErrNotFound", err)
	}
	if toggler.InFlight(99, "u1") {
		t.Error("guard not released after error")
	}
}

func TestToggleInFlightRejected(t *testing.T) {
	t.Parallel()

	store, commentID := storeWithComment(t)
	gate := make(chan struct{})
	store.likeGate = gate
	toggler := NewLikeToggler(store)
	ctx := context.Background()

	type result struct {
		state *models.LikeState
		err   error
	}
	done := make(chan result, 1)
	go func() {
		s, err := toggler.Toggle(ctx, commentID, "u1")
		done <- result{s, err}
	}()

	deadline := time.Now().Add(time.Second)
	for !toggler.InFlight(commentID, "u1") {
		if time.Now().After(deadline) {
			t.Fatal("first toggle never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := toggler.Toggle(ctx, commentID, "u1"); !errors.Is(err, ErrToggleInFlight) {
		t.Errorf("concurrent toggle = %v, want ErrToggleInFlight", err)
	}

	// A different user is not blocked by u1's toggle.
	store.mu.Lock()
	store.likeGate = nil
	store.mu.Unlock()
	if _, err := toggler.Toggle(ctx, commentID, "u2"); err != nil {
		t.Errorf("other user toggle = %v", err)
	}

	close(gate)
	r := <-done
	if r.err != nil || !r.state.Liked {
		t.Fatalf("first toggle = %+v, %v", r.state, r.err)
	}
	if store.likeWrites != 2 {
		t.Errorf("like writes = %d, rejected toggle must not write", store.likeWrites)
	}
	if toggler.InFlight(commentID, "u1") {
		t.Error("guard not released")
	}
}

func TestToggleFailureReconciles(t *testing.T) {
	t.Parallel()

	store, commentID := storeWithComment(t)
	ctx := context.Background()
	if err := store.AddLike(ctx, commentID, "u2"); err != nil {
		t.Fatal(err)
	}
	store.failWrites = true

	_, err := NewLikeToggler(store).Toggle(ctx, commentID, "u1")

	var toggleErr *ToggleError
	if !errors.As(err, &toggleErr) {
		t.Fatalf("Toggle error = %v, want *ToggleError", err)
	}
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("ToggleError does not unwrap to the write error")
	}
	if toggleErr.State == nil || toggleErr.State.Liked || toggleErr.State.LikeCount != 1 {
		t.Errorf("reconciled state = %+v, want unliked with count 1", toggleErr.State)
	}
}
