// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"
	"testing"
)

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, nil)

	var status HealthStatus
	rec := env.do(t, http.MethodGet, "/api/v1/health", "", nil)
	decodeData(t, rec, &status)
	if status.Status != "healthy" || !status.DatabaseConnected || status.SchemaVersion == 0 {
		t.Errorf("health = %+v", status)
	}
	if status.TMDBConfigured {
		t.Error("tmdb_configured = true without an API key")
	}

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		if rec := env.do(t, http.MethodGet, path, "", nil); rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
}

func TestWebSocketWithoutHub(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.signup(t, "ws@example.com")

	expectError(t, env.do(t, http.MethodGet, "/api/v1/ws", token, nil), http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
	expectError(t, env.do(t, http.MethodGet, "/api/v1/ws", "", nil), http.StatusUnauthorized, ErrCodeUnauthorized)
}
