// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/filmlerim/internal/authz"
	"github.com/tomtom215/filmlerim/internal/middleware"
)

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)                          // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)                          // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)                       // Recover from panics
	r.Use(router.chiMiddleware.CORS())                   // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)                  // Request counters by route pattern
	r.Use(chimiddleware.Compress(5, "application/json")) // gzip JSON bodies
	r.Use(router.middleware.Authenticate)                // Resolve the session if a token is present

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Authentication Endpoints
	// ========================
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(router.chiMiddleware.RateLimitAuth())

		// Login has strictest rate limiting (5 attempts per 5 minutes)
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
		r.Post("/signup", router.handler.Signup)
		r.Post("/logout", router.handler.Logout)
		r.Get("/session", router.handler.Session)
	})

	// ========================
	// Authenticated API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.middleware.RequireAuth)

		// Catalog browsing
		r.Group(func(r chi.Router) {
			r.Use(router.authorize(authz.ObjectCatalog, authz.ActionRead))
			r.Get("/home", router.handler.Home)
			r.Get("/films", router.handler.ListFilms)
			r.Get("/films/genres", router.handler.ListGenres)
			r.Get("/films/{id}", router.handler.GetFilm)
		})

		// Per-user social data
		r.Group(func(r chi.Router) {
			r.Use(router.authorizeRequest(authz.ObjectSocial))
			r.Use(writeOnly(router.chiMiddleware.RateLimitWrite()))
			r.Get("/favorites", router.handler.ListFavorites)
			r.Post("/films/{id}/favorite", router.handler.ToggleFavorite)
			r.Get("/watchlist", router.handler.ListWatchlist)
			r.Put("/films/{id}/watchlist", router.handler.SetWatchlist)
			r.Post("/films/{id}/comments", router.handler.CreateComment)
			r.Put("/comments/{id}", router.handler.UpdateComment)
			r.Delete("/comments/{id}", router.handler.DeleteComment)
			r.Post("/comments/{id}/like", router.handler.ToggleLike)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(router.authorizeRequest(authz.ObjectProfile))
			r.Get("/", router.handler.GetProfile)
			r.Put("/", router.handler.UpdateProfile)
			r.Get("/preferences", router.handler.GetPreferences)
			r.Put("/preferences", router.handler.UpdatePreferences)
		})

		// Catalog administration
		r.Route("/admin", func(r chi.Router) {
			r.Route("/films", func(r chi.Router) {
				r.Use(router.authorizeRequest(authz.ObjectFilms))
				r.Post("/", router.handler.CreateFilm)
				r.Put("/{id}", router.handler.UpdateFilm)
				r.Delete("/{id}", router.handler.DeleteFilm)
			})
			r.Route("/tmdb", func(r chi.Router) {
				r.Use(router.authorizeRequest(authz.ObjectTMDB))
				r.Use(router.chiMiddleware.RateLimitTMDB())
				r.Get("/search", router.handler.TMDBSearch)
				r.Post("/import", router.handler.TMDBImport)
			})
			r.With(router.authorize(authz.ObjectSeed, authz.ActionWrite)).
				Post("/seed", router.handler.SeedCatalog)
		})

		// Live catalog and like updates
		r.With(router.chiMiddleware.RateLimitWebSocket()).Get("/ws", router.handler.WebSocket)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// ========================
	// Web client
	// ========================
	r.Get("/*", router.serveStaticOrIndex)
	r.NotFound(router.serveStaticOrIndex)

	return r
}
