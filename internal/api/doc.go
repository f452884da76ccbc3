// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package api provides the HTTP REST API layer for Filmlerim.

Every JSON response uses the models.APIResponse envelope: status "success"
with data, or status "error" with a code, message and optional details.

Route groups:

 1. Health (/api/v1/health): liveness, readiness and a summary with the
    schema version and websocket client count. Public.

 2. Auth (/api/v1/auth): signup, login, logout and session. Login carries
    the strictest rate limit. Tokens are returned in the body and set as an
    HttpOnly cookie.

 3. Catalog (/api/v1/home, /api/v1/films): home feed, filtered and sorted
    film pages, genres and film detail with comments.

 4. Social (/api/v1/favorites, /api/v1/watchlist, /api/v1/comments):
    favorite and like toggles, watchlist status and comment authoring.
    Mutations publish events to the websocket hub.

 5. Profile (/api/v1/profile): profile view with statistics, bio, avatar
    and display preferences.

 6. Admin (/api/v1/admin): film CRUD, TMDB search and import, and catalog
    seeding. Admin role only.

Everything under /api/v1 except health and auth requires a session, and the
role checks come from the Casbin policy in package authz.

Usage Example:

	handler := api.NewHandler(db, cfg, authService, authMw, hub, tmdbClient)
	router := api.NewRouter(handler, authMw, authz.NewMiddleware(enforcer))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
