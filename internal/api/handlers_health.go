// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"
	"time"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	SchemaVersion     int     `json:"schema_version,omitempty"`
	TMDBConfigured    bool    `json:"tmdb_configured"`
	WebSocketClients  int     `json:"websocket_clients"`
	Uptime            float64 `json:"uptime"`
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns database connectivity, TMDB configuration, connected websocket clients and uptime
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthStatus} "Health status retrieved successfully"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	health := HealthStatus{
		Status:            "healthy",
		Version:           Version,
		DatabaseConnected: dbConnected,
		TMDBConfigured:    h.tmdb != nil && h.tmdb.Enabled(),
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if !dbConnected {
		health.Status = "degraded"
	} else if v, err := h.db.CurrentSchemaVersion(r.Context()); err == nil {
		health.SchemaVersion = v
	}
	if h.wsHub != nil {
		health.WebSocketClients = h.wsHub.GetClientCount()
	}

	respondSuccess(w, http.StatusOK, health, start)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when the database answers.
//
// @Summary Kubernetes readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.db == nil || h.db.Ping(r.Context()) != nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Database is not reachable", nil)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"ready":    true,
		"database": true,
	}, start)
}
