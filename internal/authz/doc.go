// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

// Package authz decides whether a session's role may act on a resource,
// using Casbin RBAC.
//
// Resources are coarse route groups rather than paths:
//
//	catalog  film list, detail, genres, home
//	social   comments, likes, favorites, watchlist
//	profile  the caller's own profile and preferences
//	films    admin film create/update/delete
//	tmdb     admin TMDB search and import
//	seed     admin starter catalog seeding
//
// Actions are "read" and "write". The admin role inherits every standard
// permission. The model and policy are embedded; CASBIN_MODEL_PATH and
// CASBIN_POLICY_PATH override them from disk.
//
// Row-level ownership (only the author edits a comment) is not expressed
// here; the social package enforces it.
package authz
