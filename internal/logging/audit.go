// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// AuthEvent names an account lifecycle event.
type AuthEvent string

const (
	AuthEventSignup       AuthEvent = "signup"
	AuthEventLoginSuccess AuthEvent = "login_success"
	AuthEventLoginFailure AuthEvent = "login_failure"
	AuthEventLogout       AuthEvent = "logout"
	AuthEventAdminCreated AuthEvent = "admin_bootstrap"
)

// AuthAudit writes account events with personal data masked.
type AuthAudit struct {
	logger zerolog.Logger
}

// NewAuthAudit returns an audit logger on the global logger.
func NewAuthAudit() *AuthAudit {
	return &AuthAudit{logger: WithComponent("auth")}
}

// NewAuthAuditWithLogger returns an audit logger on logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAuthAuditWithLogger(logger zerolog.Logger) *AuthAudit {
	return &AuthAudit{logger: logger.With().Str("component", "auth").Logger()}
}

// Record logs event for the given account. reason is empty on success.
func (a *AuthAudit) Record(event AuthEvent, email, userID, ip, reason string) {
	e := a.logger.Info()
	if reason != "" {
		e = a.logger.Warn().Str("reason", reason)
	}
	e = e.Str("event", string(event)).Str("email", MaskEmail(email))
	if userID != "" {
		e = e.Str("user_id", userID)
	}
	if ip != "" {
		e = e.Str("ip", ip)
	}
	e.Msg("auth event")
}

// MaskEmail keeps the first two characters of the local part.
// "deniz.kaya@example.com" -> "de***@example.com"
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return "***" + domain
	}
	return local[:2] + "***" + domain
}

// MaskToken shows the first and last four characters of a token.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
