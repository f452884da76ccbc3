// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/catalog"
	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/social"
	"github.com/tomtom215/filmlerim/internal/tmdb"
	ws "github.com/tomtom215/filmlerim/internal/websocket"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files by screen:
//   - handlers_auth.go: signup, login, logout, session
//   - handlers_films.go: home, dashboard listing, genres, film detail
//   - handlers_social.go: favorites, watchlist, comments, likes
//   - handlers_profile.go: profile card, stats, preferences
//   - handlers_admin.go: film management and TMDB search/import
//   - handlers_seed.go: starter catalog
//   - handlers_health.go: health and probes
//   - handlers_websocket.go: live updates
type Handler struct {
	db        *database.DB
	config    *config.Config
	auth      *auth.Service
	authMw    *auth.Middleware
	social    *social.Service
	tmdb      *tmdb.Client
	importer  *tmdb.Importer
	wsHub     *ws.Hub
	events    ws.Broadcaster
	upgrader  *websocket.Upgrader
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates the API handler. wsHub may be nil, in which case
// mutations publish nothing and /api/v1/ws answers 503. A nil tmdbClient is
// built from cfg.TMDB.
//
// Example:
//
//	handler := api.NewHandler(db, cfg, authService, authMiddleware, wsHub, tmdbClient)
//	router := api.NewRouter(handler, authMiddleware, authzMiddleware)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(db *database.DB, cfg *config.Config, authService *auth.Service, authMw *auth.Middleware, wsHub *ws.Hub, tmdbClient *tmdb.Client) *Handler {
	var events ws.Broadcaster = ws.Nop{}
	if wsHub != nil {
		events = wsHub
	}
	if tmdbClient == nil {
		tmdbClient = tmdb.NewClient(cfg.TMDB)
	}

	return &Handler{
		db:        db,
		config:    cfg,
		auth:      authService,
		authMw:    authMw,
		social:    social.NewService(db, events),
		tmdb:      tmdbClient,
		importer:  tmdb.NewImporter(tmdbClient, db),
		wsHub:     wsHub,
		events:    events,
		upgrader:  ws.NewUpgrader(cfg.Security.CORSOrigins),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// Social exposes the social service, mainly so tests can reach the like
// toggler.
func (h *Handler) Social() *social.Service {
	return h.social
}

// viewerLanguage is the language used for sorting and month labels: the
// lang query parameter, else the viewer's saved preference, else the
// configured default.
func (h *Handler) viewerLanguage(ctx context.Context, override string) string {
	if override != "" {
		return catalog.NormalizeLanguage(override)
	}
	if session := auth.SessionFromContext(ctx); session != nil {
		profile, err := h.db.GetProfileByID(ctx, session.UserID)
		if err == nil && profile.Preferences.Language != "" {
			return catalog.NormalizeLanguage(profile.Preferences.Language)
		}
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to load viewer preferences")
		}
	}
	return catalog.NormalizeLanguage(h.config.API.DefaultLanguage)
}

// pageSize clamps a requested page size to the configured bounds.
func (h *Handler) pageSize(requested int) int {
	if requested < 1 {
		return h.config.API.PageSize
	}
	if requested > h.config.API.MaxPageSize {
		return h.config.API.MaxPageSize
	}
	return requested
}
