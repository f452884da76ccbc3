// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/social"
	"github.com/tomtom215/filmlerim/internal/tmdb"
	"github.com/tomtom215/filmlerim/internal/validation"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeValidation         = validation.ErrorCode
	ErrCodeDatabaseError      = "DATABASE_ERROR"
	ErrCodeToggleInFlight     = "TOGGLE_IN_FLIGHT"
	ErrCodeTMDBNotConfigured  = "TMDB_NOT_CONFIGURED"
	ErrCodeTMDBNoResults      = "TMDB_NO_RESULTS"
	ErrCodeTMDBUnavailable    = "TMDB_UNAVAILABLE"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRequestCanceled    = "REQUEST_CANCELED"
)

// statusClientClosedRequest is nginx's code for a client that went away.
const statusClientClosedRequest = 499

// respondServiceError maps an error from the database, social, auth or
// tmdb layers to its HTTP status and code. Anything unrecognised is a 500
// DATABASE_ERROR with the cause logged only.
func respondServiceError(w http.ResponseWriter, err error) {
	var toggleErr *social.ToggleError
	var reqErr *validation.RequestValidationError

	switch {
	case errors.As(err, &reqErr):
		respondAPIError(w, http.StatusBadRequest, reqErr.ToAPIError(), nil)

	case errors.As(err, &toggleErr):
		apiErr := &models.APIError{Code: ErrCodeDatabaseError, Message: "Failed to update like"}
		if toggleErr.State != nil {
			apiErr.Details = map[string]interface{}{
				"comment_id": toggleErr.State.CommentID,
				"liked":      toggleErr.State.Liked,
				"like_count": toggleErr.State.LikeCount,
			}
		}
		respondAPIError(w, http.StatusInternalServerError, apiErr, err)

	case errors.Is(err, social.ErrToggleInFlight):
		respondError(w, http.StatusConflict, ErrCodeToggleInFlight, "A like update for this comment is already in progress", nil)
	case errors.Is(err, social.ErrForbidden):
		respondError(w, http.StatusForbidden, ErrCodeForbidden, "You can only change your own comments", nil)
	case errors.Is(err, social.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "Invalid watchlist status", nil)

	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid email or password", nil)
	case errors.Is(err, auth.ErrEmailTaken):
		respondError(w, http.StatusConflict, ErrCodeConflict, "An account with this email already exists", nil)

	case errors.Is(err, tmdb.ErrMissingAPIKey):
		respondError(w, http.StatusServiceUnavailable, ErrCodeTMDBNotConfigured, "TMDB API key is not configured", nil)
	case errors.Is(err, tmdb.ErrNoResults):
		respondError(w, http.StatusNotFound, ErrCodeTMDBNoResults, "No matching films found on TMDB", nil)
	case errors.Is(err, tmdb.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, ErrCodeTMDBUnavailable, "TMDB is temporarily unavailable", err)
	case errors.Is(err, tmdb.ErrUpstream):
		respondError(w, http.StatusBadGateway, ErrCodeTMDBUnavailable, "TMDB request failed", err)

	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Not found", nil)
	case errors.Is(err, database.ErrConflict):
		respondError(w, http.StatusConflict, ErrCodeConflict, "Already exists", nil)

	case errors.Is(err, context.Canceled):
		respondError(w, statusClientClosedRequest, ErrCodeRequestCanceled, "Request canceled", nil)

	default:
		respondError(w, http.StatusInternalServerError, ErrCodeDatabaseError, "A database error occurred", err)
	}
}
