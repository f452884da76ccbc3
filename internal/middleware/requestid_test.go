// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/filmlerim/internal/logging"
)

func serveRequestID(t *testing.T, upstreamID string) (ctx context.Context, responseID string) {
	t.Helper()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/films", nil)
	if upstreamID != "" {
		req.Header.Set(RequestIDHeader, upstreamID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return ctx, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	ctx, responseID := serveRequestID(t, "")

	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response X-Request-ID %q is not a UUID: %v", responseID, err)
	}
	if got := GetRequestID(ctx); got != responseID {
		t.Errorf("context ID = %q, header ID = %q", got, responseID)
	}
	if got := logging.RequestIDFromContext(ctx); got != responseID {
		t.Errorf("logging request ID = %q, want %q", got, responseID)
	}
	if logging.CorrelationIDFromContext(ctx) == "" {
		t.Error("expected a correlation ID in context")
	}
}

func TestRequestID_Upstream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		upstream string
		keep     bool
	}{
		{"preserves proxy id", "proxy-abc-123", true},
		{"blank replaced", "   ", false},
		{"oversized replaced", strings.Repeat("x", maxUpstreamIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, responseID := serveRequestID(t, tt.upstream)

			if tt.keep && responseID != tt.upstream {
				t.Errorf("X-Request-ID = %q, want %q", responseID, tt.upstream)
			}
			if !tt.keep {
				if _, err := uuid.Parse(responseID); err != nil {
					t.Errorf("X-Request-ID = %q, want a fresh UUID", responseID)
				}
			}
			if GetRequestID(ctx) != responseID {
				t.Error("context and header IDs differ")
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		_, id := serveRequestID(t, "")
		if seen[id] {
			t.Fatalf("duplicate request ID %s", id)
		}
		seen[id] = true
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	t.Parallel()

	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID(empty) = %q", got)
	}
}
