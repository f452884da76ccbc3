// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

// Package social implements the per-user mutations: favorites, watchlist
// status, comments and comment likes.
//
// Every action decides membership from the store, never from client
// state. Comment edits and deletes are limited to the author
// (ErrForbidden). Like toggles are serialized per (comment, user): a
// second toggle arriving while the first is still running is rejected with
// ErrToggleInFlight and writes nothing. When a like write fails, the
// toggler re-reads the stored state and returns it inside a *ToggleError
// so the caller can undo its optimistic update.
//
// Successful mutations are published on a websocket.Broadcaster.
package social
