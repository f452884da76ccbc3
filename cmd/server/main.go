// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/filmlerim/docs" // swagger spec for /swagger/*
	"github.com/tomtom215/filmlerim/internal/api"
	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/authz"
	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/metrics"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/supervisor"
	"github.com/tomtom215/filmlerim/internal/supervisor/services"
	"github.com/tomtom215/filmlerim/internal/tmdb"
	ws "github.com/tomtom215/filmlerim/internal/websocket"
)

//nolint:gocyclo // sequential startup
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	metrics.SetAppInfo(api.Version, runtime.Version())
	logging.Info().
		Str("version", api.Version).
		Str("db_path", cfg.Database.Path).
		Str("session_store", cfg.Security.SessionStore).
		Bool("tmdb_enabled", cfg.TMDB.Enabled()).
		Msg("Starting Filmlerim")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedCatalog {
		result, err := db.SeedCatalog(context.Background())
		if err != nil {
			logging.Error().Err(err).Msg("Failed to seed starter catalog")
		} else {
			logging.Info().
				Int("inserted", len(result.Inserted)).
				Int("skipped", len(result.Skipped)).
				Msg("Starter catalog seeded")
		}
	}

	sessionFactory, err := auth.NewSessionStoreFactory(auth.SessionStoreType(cfg.Security.SessionStore), cfg.Security.SessionStorePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer func() {
		if err := sessionFactory.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()
	if cfg.Security.SessionStore == string(auth.SessionStoreMemory) && !cfg.IsDevelopment() {
		logging.Warn().Msg("Session store is 'memory': every login is lost on restart. Use SESSION_STORE=badger in production.")
	}

	authService, err := auth.NewService(db, sessionFactory.CreateStore(), &cfg.Security, models.Preferences{
		Theme:    cfg.API.DefaultTheme,
		Language: cfg.API.DefaultLanguage,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	if err := authService.EnsureAdmin(context.Background()); err != nil {
		logging.Fatal().Err(err).Msg("Failed to bootstrap admin account")
	}
	authMiddleware := auth.NewMiddleware(authService, cfg.Security.CookieSecure)

	enforcer, err := authz.NewEnforcer(authz.EnforcerConfigFrom(cfg.Security.Casbin))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authorization")
	}
	defer enforcer.Close()

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" {
			logging.Warn().Msg("CORS allows any origin; credentials are not sent cross-origin. Set CORS_ORIGINS in production.")
			break
		}
	}

	tmdbClient := tmdb.NewClient(cfg.TMDB)
	if !tmdbClient.Enabled() {
		logging.Info().Msg("TMDB_API_KEY not set; TMDB search and import are disabled")
	}

	wsHub := ws.NewHub()

	handler := api.NewHandler(db, cfg, authService, authMiddleware, wsHub, tmdbClient)
	router := api.NewRouter(handler, authMiddleware, authz.NewMiddleware(enforcer))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewSessionCleanupService(authService, authService.Sessions(), cfg.Security.SessionCleanup))
	if cfg.Database.CheckpointInterval > 0 {
		tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval))
	}
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Filmlerim stopped")
}
