// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package auth implements email/password accounts and server-side sessions.

# Flow

Signup and Login verify credentials against the profiles table (bcrypt
hashes), create a Session in the configured SessionStore and return a signed
HS256 JWT whose ID claim is the session ID. Every request presents the token
either as "Authorization: Bearer <token>" or as the "token" cookie. The
middleware validates the signature, then loads the session, so Logout takes
effect immediately even though the token itself has not expired.

# Session Stores

  - MemorySessionStore: in-process map, lost on restart.
  - BadgerSessionStore: BadgerDB key/value store under SESSION_STORE_PATH.

Both implement SessionStore. Expired sessions are rejected on read and
removed by CleanupExpired, which the supervisor runs periodically.

# Request Context

The authenticated Session travels in the request context:

	sess := auth.SessionFromContext(r.Context())
	if sess == nil {
	    // not authenticated
	}

# Admin Bootstrap

When ADMIN_EMAIL and ADMIN_PASSWORD are set, EnsureAdmin creates that
account with the admin role, or promotes it if it already exists. Signups
using ADMIN_EMAIL also receive the admin role, but only while ADMIN_PASSWORD
is set; an email on its own promotes nobody.
*/
package auth
