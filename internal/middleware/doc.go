// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package middleware provides HTTP middleware shared by every route.

Key Components:

  - RequestID: UUID request IDs in the X-Request-ID header and the request
    context, picked up by logging.Ctx for structured request logs
  - PrometheusMetrics: request count, latency histogram and in-flight gauge,
    labelled by chi route pattern

Both use the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Access the request ID in a handler:

	func handler(w http.ResponseWriter, r *http.Request) {
	    id := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("handling") // includes request_id
	}

Response compression and CORS come from chi's own middleware and
github.com/go-chi/cors; authentication and authorization live in
internal/auth and internal/authz.

See Also:

  - internal/metrics: Prometheus metrics definitions
  - internal/api: router wiring
*/
package middleware
