// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package authz

import (
	"net/http"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/logging"
)

// Middleware guards route groups with the enforcer. It must run after
// auth.Middleware.RequireAuth.
type Middleware struct {
	enforcer *Enforcer
}

// NewMiddleware creates the authorization middleware.
func NewMiddleware(enforcer *Enforcer) *Middleware {
	return &Middleware{enforcer: enforcer}
}

// Authorize allows the request when the session's role may perform action
// on object.
func (m *Middleware) Authorize(object, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.check(w, r, next, object, action)
		})
	}
}

// AuthorizeRequest derives the action from the HTTP method.
func (m *Middleware) AuthorizeRequest(object string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.check(w, r, next, object, methodToAction(r.Method))
		})
	}
}

func (m *Middleware) check(w http.ResponseWriter, r *http.Request, next http.Handler, object, action string) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		auth.WriteJSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	allowed, err := m.enforcer.Enforce(string(session.Role), object, action)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("object", object).
			Str("action", action).
			Msg("Authorization error")
		auth.WriteJSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed")
		return
	}

	if !allowed {
		logging.Ctx(r.Context()).Warn().
			Str("role", string(session.Role)).
			Str("object", object).
			Str("action", action).
			Msg("Authorization denied")
		auth.WriteJSONError(w, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
		return
	}

	next.ServeHTTP(w, r)
}

func methodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ActionRead
	default:
		return ActionWrite
	}
}
