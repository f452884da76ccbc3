// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

// @title Filmlerim API
// @version 1.0
// @description Movie catalog with favorites, watchlists, comments and per-user statistics.
// @description
// @description ## Authentication
// @description
// @description Endpoints under /api/v1 other than /auth and /health require a session token,
// @description sent as the `token` HTTP-only cookie (set by login and signup) or as a Bearer header.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "ERROR_CODE", "message": "Human-readable message", "details": {}},
// @description   "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/filmlerim/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in cookie
// @name token
// @description Session JWT stored in an HTTP-only cookie. Obtain via /api/v1/auth/login.
//
// @tag.name auth
// @tag.description Signup, login, logout and session lookup
//
// @tag.name catalog
// @tag.description Home lists, film browsing and genres
//
// @tag.name social
// @tag.description Favorites, watchlist, comments and likes
//
// @tag.name profile
// @tag.description Profile statistics and preferences
//
// @tag.name admin
// @tag.description Catalog curation, TMDB import and seeding
//
// @tag.name health
// @tag.description Liveness, readiness and component health
package main
