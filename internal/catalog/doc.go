// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package catalog computes the derived views of the film catalog.

Everything here is a pure function over already-loaded data: no I/O, no
shared state, safe for concurrent use. Handlers load rows through the
database package and pass them through these functions before responding.

# Views

  - Filter: case-insensitive substring search on title or description,
    optionally restricted to one genre. The database applies the same
    predicate in SQL; Filter is the in-memory reference.
  - Sort: newest (created_at descending), az (locale collation through
    golang.org/x/text/collate) or top_rated.
  - Paginate: 1-indexed fixed-size pages over any slice.

# Aggregates

  - AverageRating and RatingLabel ("4.0").
  - GenreHistogram and TopGenre over favorite films.
  - MonthlyActivity: six trailing calendar months, zero-filled, labelled in
    Turkish or English.
  - BuildProfileStats combines the above for the profile screen.

Example:

	films = catalog.Filter(films, catalog.FilterOptions{Query: "dream"})
	films = catalog.Sort(films, catalog.ParseSortKey(r.URL.Query().Get("sort")), prefs.Language)
	page := catalog.Paginate(films, 2, catalog.DefaultPageSize)
*/
package catalog
