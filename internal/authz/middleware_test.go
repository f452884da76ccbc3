// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package authz

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/models"
)

func requestWithRole(method string, role models.Role) *http.Request {
	req := httptest.NewRequest(method, "/api/v1/admin/films", nil)
	if role == "" {
		return req
	}
	session := auth.NewSession(&models.Profile{ID: "user-1", Email: "u@example.com", Role: role}, time.Hour)
	return req.WithContext(auth.ContextWithSession(req.Context(), session))
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	m := NewMiddleware(newTestEnforcer(t, true))
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		role     models.Role
		wantCode int
		wantErr  string
	}{
		{"admin allowed", models.RoleAdmin, http.StatusNoContent, ""},
		{"standard forbidden", models.RoleStandard, http.StatusForbidden, "FORBIDDEN"},
		{"no session", "", http.StatusUnauthorized, "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			m.Authorize(ObjectFilms, ActionWrite)(ok).ServeHTTP(rec, requestWithRole(http.MethodPost, tt.role))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantErr == "" {
				return
			}
			var resp models.APIResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != "error" || resp.Error == nil || resp.Error.Code != tt.wantErr {
				t.Errorf("response = %+v, want error %s", resp, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeRequestUsesMethod(t *testing.T) {
	t.Parallel()

	m := NewMiddleware(newTestEnforcer(t, false))
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.AuthorizeRequest(ObjectCatalog)(ok)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(http.MethodGet, models.RoleStandard))
	if rec.Code != http.StatusOK {
		t.Errorf("GET status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(http.MethodDelete, models.RoleStandard))
	if rec.Code != http.StatusForbidden {
		t.Errorf("DELETE status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestMethodToAction(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		http.MethodGet:     ActionRead,
		http.MethodHead:    ActionRead,
		http.MethodOptions: ActionRead,
		http.MethodPost:    ActionWrite,
		http.MethodPut:     ActionWrite,
		http.MethodPatch:   ActionWrite,
		http.MethodDelete:  ActionWrite,
	}
	for method, want := range tests {
		if got := methodToAction(method); got != want {
			t.Errorf("methodToAction(%s) = %s, want %s", method, got, want)
		}
	}
}
