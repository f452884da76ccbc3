// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	svc, _, _ := newTestService(t, testSecurityConfig())
	res, err := svc.Signup(context.Background(), "a@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	mw := NewMiddleware(svc, false)

	var seen *Session
	protected := mw.Authenticate(mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+res.Token) }, http.StatusNoContent},
		{"lowercase bearer", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+res.Token) }, http.StatusNoContent},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookieName, Value: res.Token}) }, http.StatusNoContent},
		{"missing", func(r *http.Request) {}, http.StatusUnauthorized},
		{"basic scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }, http.StatusUnauthorized},
		{"bad token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/v1/films", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status == http.StatusNoContent && (seen == nil || seen.UserID != res.Profile.ID) {
				t.Errorf("session in context = %+v", seen)
			}
			if tt.status == http.StatusUnauthorized && !strings.Contains(rec.Body.String(), `"UNAUTHORIZED"`) {
				t.Errorf("body = %s, want UNAUTHORIZED envelope", rec.Body.String())
			}
		})
	}
}

func TestTokenCookies(t *testing.T) {
	mw := NewMiddleware(nil, true)

	rec := httptest.NewRecorder()
	mw.SetTokenCookie(rec, "tok", time.Now().Add(time.Hour))
	cookie := rec.Result().Cookies()[0]
	if cookie.Name != TokenCookieName || cookie.Value != "tok" || !cookie.HttpOnly || !cookie.Secure {
		t.Errorf("SetTokenCookie() = %+v", cookie)
	}

	rec = httptest.NewRecorder()
	mw.ClearTokenCookie(rec)
	cleared := rec.Result().Cookies()[0]
	if cleared.MaxAge >= 0 || cleared.Value != "" {
		t.Errorf("ClearTokenCookie() = %+v", cleared)
	}
}
