// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package auth

import "context"

type contextKey string

// SessionContextKey holds the authenticated *Session.
const SessionContextKey contextKey = "session"

// ContextWithSession returns ctx carrying session.
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// SessionFromContext returns the authenticated session, or nil.
func SessionFromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(SessionContextKey).(*Session); ok {
		return s
	}
	return nil
}
