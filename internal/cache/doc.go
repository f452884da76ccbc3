// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

// Package cache provides a small thread-safe TTL cache.
//
// The TMDB client keeps recent search results here so an admin paging
// through the import screen does not spend the upstream rate limit on
// repeated queries.
//
//	c := cache.New(5*time.Minute, 256)
//	key := cache.GenerateKey("search", map[string]string{"q": query})
//	if v, ok := c.Get(key); ok {
//	    return v.([]Candidate), nil
//	}
package cache
