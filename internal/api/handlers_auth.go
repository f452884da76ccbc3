// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/validation"
)

// SessionInfo is the body of GET /auth/session.
type SessionInfo struct {
	UserID    string          `json:"user_id"`
	Email     string          `json:"email"`
	Role      models.Role     `json:"role"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *models.Profile `json:"profile,omitempty"`
}

// Signup creates an account and starts its session.
//
// @Summary Create an account
// @Description Registers an email/password account, sets the token cookie and returns the JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body validation.SignupForm true "Signup form"
// @Success 201 {object} models.APIResponse{data=auth.Result}
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 409 {object} models.APIResponse "Email already registered"
// @Router /api/v1/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var form validation.SignupForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	result, err := h.auth.Signup(r.Context(), form.Email, form.Password, clientIP(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.authMw.SetTokenCookie(w, result.Token, result.ExpiresAt)
	respondSuccess(w, http.StatusCreated, result, start)
}

// Login starts a session.
//
// @Summary Log in
// @Description Verifies credentials, sets the token cookie and returns the JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body validation.LoginForm true "Login form"
// @Success 200 {object} models.APIResponse{data=auth.Result}
// @Failure 400 {object} models.APIResponse "Validation failed"
// @Failure 401 {object} models.APIResponse "Invalid email or password"
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var form validation.LoginForm
	if !decodeAndValidate(w, r, &form) {
		return
	}

	result, err := h.auth.Login(r.Context(), form.Email, form.Password, clientIP(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.authMw.SetTokenCookie(w, result.Token, result.ExpiresAt)
	respondSuccess(w, http.StatusOK, result, start)
}

// Logout ends the current session. It always clears the cookie, so it
// succeeds even when the session had already expired.
//
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if session := auth.SessionFromContext(r.Context()); session != nil {
		if err := h.auth.Logout(r.Context(), session, clientIP(r)); err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to delete session on logout")
		}
	}

	h.authMw.ClearTokenCookie(w)
	respondSuccess(w, http.StatusOK, map[string]bool{"logged_out": true}, start)
}

// Session returns the caller's session and profile, or 401.
//
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} models.APIResponse{data=SessionInfo}
// @Failure 401 {object} models.APIResponse "Not logged in"
// @Router /api/v1/auth/session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	session := auth.SessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required", nil)
		return
	}

	profile, err := h.db.GetProfileByID(r.Context(), session.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, SessionInfo{
		UserID:    session.UserID,
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
		Profile:   profile,
	}, start)
}
