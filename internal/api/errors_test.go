// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/social"
	"github.com/tomtom215/filmlerim/internal/tmdb"
	"github.com/tomtom215/filmlerim/internal/validation"
)

func TestRespondServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validation.NewFieldError("text", "trimmin", "Comment must be at least 3 characters"), http.StatusBadRequest, ErrCodeValidation},
		{"in flight", social.ErrToggleInFlight, http.StatusConflict, ErrCodeToggleInFlight},
		{"forbidden", fmt.Errorf("update: %w", social.ErrForbidden), http.StatusForbidden, ErrCodeForbidden},
		{"invalid status", social.ErrInvalidStatus, http.StatusBadRequest, ErrCodeValidation},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"email taken", auth.ErrEmailTaken, http.StatusConflict, ErrCodeConflict},
		{"tmdb key", tmdb.ErrMissingAPIKey, http.StatusServiceUnavailable, ErrCodeTMDBNotConfigured},
		{"tmdb empty", tmdb.ErrNoResults, http.StatusNotFound, ErrCodeTMDBNoResults},
		{"tmdb breaker", tmdb.ErrUnavailable, http.StatusServiceUnavailable, ErrCodeTMDBUnavailable},
		{"tmdb upstream", fmt.Errorf("%w: status 500", tmdb.ErrUpstream), http.StatusBadGateway, ErrCodeTMDBUnavailable},
		{"not found", fmt.Errorf("film 9: %w", database.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"conflict", database.ErrConflict, http.StatusConflict, ErrCodeConflict},
		{"canceled", context.Canceled, statusClientClosedRequest, ErrCodeRequestCanceled},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			respondServiceError(rec, tt.err)
			apiErr := expectError(t, rec, tt.status, tt.code)
			if apiErr.Message == "" {
				t.Error("empty message")
			}
			if apiErr.Message == "disk on fire" {
				t.Error("internal error text leaked to the client")
			}
		})
	}
}

func TestRespondServiceErrorToggleCarriesState(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondServiceError(rec, &social.ToggleError{
		State: &models.LikeState{CommentID: 7, Liked: false, LikeCount: 3},
		Err:   errors.New("write failed"),
	})

	apiErr := expectError(t, rec, http.StatusInternalServerError, ErrCodeDatabaseError)
	// JSON numbers decode as float64.
	if apiErr.Details["comment_id"] != float64(7) || apiErr.Details["liked"] != false || apiErr.Details["like_count"] != float64(3) {
		t.Errorf("details = %+v", apiErr.Details)
	}
}

func TestEnvelopeShape(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondSuccess(rec, http.StatusOK, map[string]int{"n": 1}, time.Now())

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "success" || env.Error != nil || string(env.Data) != `{"n":1}` {
		t.Errorf("envelope = %+v", env)
	}
	if env.Metadata.Timestamp.IsZero() {
		t.Error("metadata.timestamp not set")
	}
}
