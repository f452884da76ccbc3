// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package tmdb

import "errors"

var (
	// ErrMissingAPIKey is returned by every call when TMDB_API_KEY is unset.
	ErrMissingAPIKey = errors.New("tmdb: api key not configured")

	// ErrNoResults is returned when a search is empty or a movie id is
	// unknown.
	ErrNoResults = errors.New("tmdb: no results")

	// ErrUpstream wraps network failures and non-2xx answers.
	ErrUpstream = errors.New("tmdb: upstream error")

	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("tmdb: temporarily unavailable")
)
