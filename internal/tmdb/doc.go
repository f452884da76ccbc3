// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package tmdb is the client for The Movie Database v3 API, used by the admin
screens to search for films and import them into the catalog.

Endpoints used:
  - GET /search/movie?query=&language=  ranked candidates
  - GET /movie/{id}                       full details
  - GET /movie/{id}/videos                trailer lookup

Resilience:
  - Outbound requests are paced by a token bucket (TMDB_REQUESTS_PER_SECOND).
  - A circuit breaker opens after five consecutive upstream failures and
    rejects calls for a minute. "Not found" answers do not count as
    failures.
  - No automatic retries.

Genre ids are mapped through a fixed table to the English labels used by
the catalog, regardless of the request language, so imported films share
tags with seeded ones.
*/
package tmdb
