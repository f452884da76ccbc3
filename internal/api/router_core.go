// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/authz"
	"github.com/tomtom215/filmlerim/internal/logging"
)

// defaultStaticDir is where the built web client lives.
const defaultStaticDir = "./web/dist"

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	authz         *authz.Middleware
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a router. authzMiddleware may be nil in which case
// every authenticated user passes the role checks; main always wires one.
func NewRouter(handler *Handler, middleware *auth.Middleware, authzMiddleware *authz.Middleware) *Router {
	staticDir := handler.config.Server.StaticDir
	if staticDir == "" {
		staticDir = defaultStaticDir
	}

	if authzMiddleware == nil {
		logging.Warn().Msg("Router built without an authorization middleware; role checks are disabled")
	}

	return &Router{
		handler:       handler,
		middleware:    middleware,
		authz:         authzMiddleware,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFrom(&handler.config.Security)),
		staticDir:     staticDir,
	}
}

// authorize returns the authz check for object and action, or a pass-through
// when no enforcer is wired.
func (router *Router) authorize(object, action string) func(http.Handler) http.Handler {
	if router.authz == nil {
		return noopMiddleware
	}
	return router.authz.Authorize(object, action)
}

// authorizeRequest derives the action from the HTTP method.
func (router *Router) authorizeRequest(object string) func(http.Handler) http.Handler {
	if router.authz == nil {
		return noopMiddleware
	}
	return router.authz.AuthorizeRequest(object)
}

// serveStaticOrIndex serves static files or index.html for SPA routing
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)

	// Unknown API paths answer JSON, not the SPA shell.
	if strings.HasPrefix(urlPath, "/api/") {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Endpoint not found", nil)
		return
	}

	switch ext := strings.ToLower(filepath.Ext(urlPath)); ext {
	case ".js", ".css":
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case ".png", ".svg", ".jpg", ".webp", ".avif":
		w.Header().Set("Cache-Control", "public, max-age=604800")
	default:
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if urlPath != "/" && router.fileExists(urlPath) {
		http.FileServer(http.Dir(router.staticDir)).ServeHTTP(w, r)
		return
	}

	// SPA fallback. ServeContent rather than ServeFile: client routes may
	// contain ".." which ServeFile rejects outright.
	index, err := http.Dir(router.staticDir).Open("/index.html")
	if err != nil {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Web client not built", nil)
		return
	}
	defer index.Close()

	stat, err := index.Stat()
	if err != nil || stat.IsDir() {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Web client not built", nil)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", stat.ModTime(), index)
}

// fileExists checks if a regular file exists under the static directory.
func (router *Router) fileExists(name string) bool {
	f, err := http.Dir(router.staticDir).Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return !stat.IsDir()
}
