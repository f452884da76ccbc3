// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/models"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned by Signup for an existing account.
	ErrEmailTaken = errors.New("email already registered")
)

// ProfileStore is the subset of the database the service needs.
type ProfileStore interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	SetRole(ctx context.Context, id string, role models.Role) error
}

// Result is a successful signup or login.
type Result struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *models.Profile `json:"profile"`
	Session   *Session        `json:"-"`
}

// Service runs the account flows.
type Service struct {
	profiles    ProfileStore
	sessions    SessionStore
	jwt         *JWTManager
	audit       *logging.AuthAudit
	cfg         *config.SecurityConfig
	defaultPref models.Preferences

	// dummyHash keeps unknown-email logins as slow as wrong-password ones.
	dummyHash string
}

// NewService creates the account service. defaults are the preferences
// new profiles start with.
func NewService(profiles ProfileStore, sessions SessionStore, cfg *config.SecurityConfig, defaults models.Preferences) (*Service, error) {
	jwtManager, err := NewJWTManager(cfg)
	if err != nil {
		return nil, err
	}
	dummy, err := HashPassword(uuid.NewString(), cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &Service{
		profiles:    profiles,
		sessions:    sessions,
		jwt:         jwtManager,
		audit:       logging.NewAuthAudit(),
		cfg:         cfg,
		defaultPref: defaults,
		dummyHash:   dummy,
	}, nil
}

// SetAudit replaces the audit logger.
func (s *Service) SetAudit(audit *logging.AuthAudit) {
	s.audit = audit
}

// Sessions returns the session store.
func (s *Service) Sessions() SessionStore {
	return s.sessions
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isAdminEmail reports whether email is the bootstrap admin. Without
// ADMIN_PASSWORD there is no bootstrap, so no signup is promoted.
func (s *Service) isAdminEmail(email string) bool {
	return s.cfg.AdminEmail != "" && s.cfg.AdminPassword != "" &&
		normalizeEmail(email) == s.cfg.AdminEmail
}

// Signup creates a standard account (admin for ADMIN_EMAIL when the admin
// bootstrap is configured) and logs it in.
func (s *Service) Signup(ctx context.Context, email, password, ip string) (*Result, error) {
	email = normalizeEmail(email)

	hash, err := HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleStandard,
		Preferences:  s.defaultPref,
	}
	if s.isAdminEmail(email) {
		profile.Role = models.RoleAdmin
	}

	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, database.ErrConflict) {
			s.audit.Record(logging.AuthEventSignup, email, "", ip, "email taken")
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.audit.Record(logging.AuthEventSignup, email, profile.ID, ip, "")
	return s.startSession(ctx, profile)
}

// Login verifies credentials and starts a session.
func (s *Service) Login(ctx context.Context, email, password, ip string) (*Result, error) {
	email = normalizeEmail(email)

	profile, err := s.profiles.GetProfileByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		CheckPassword(s.dummyHash, password)
		s.audit.Record(logging.AuthEventLoginFailure, email, "", ip, "unknown email")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if !CheckPassword(profile.PasswordHash, password) {
		s.audit.Record(logging.AuthEventLoginFailure, email, profile.ID, ip, "wrong password")
		return nil, ErrInvalidCredentials
	}

	s.audit.Record(logging.AuthEventLoginSuccess, email, profile.ID, ip, "")
	return s.startSession(ctx, profile)
}

func (s *Service) startSession(ctx context.Context, profile *models.Profile) (*Result, error) {
	session := NewSession(profile, s.jwt.Timeout())
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.jwt.GenerateToken(session)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, ExpiresAt: session.ExpiresAt, Profile: profile, Session: session}, nil
}

// Logout ends session.
func (s *Service) Logout(ctx context.Context, session *Session, ip string) error {
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.audit.Record(logging.AuthEventLogout, session.Email, session.UserID, ip, "")
	return nil
}

// Authenticate resolves a bearer token to its live session.
func (s *Service) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.Subject {
		return nil, ErrInvalidToken
	}

	if err := s.sessions.Touch(ctx, session.ID, session.ExpiresAt); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Failed to touch session")
	}
	return session, nil
}

// EnsureAdmin creates or promotes the ADMIN_EMAIL account. It does nothing
// when either ADMIN_EMAIL or ADMIN_PASSWORD is unset.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	existing, err := s.profiles.GetProfileByEmail(ctx, s.cfg.AdminEmail)
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return nil
		}
		if err := s.profiles.SetRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			return fmt.Errorf("promote admin: %w", err)
		}
		s.audit.Record(logging.AuthEventAdminCreated, existing.Email, existing.ID, "", "promoted")
		return nil
	case !errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("load admin profile: %w", err)
	}

	hash, err := HashPassword(s.cfg.AdminPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	profile := &models.Profile{
		ID:           uuid.NewString(),
		Email:        s.cfg.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Preferences:  s.defaultPref,
	}
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		return fmt.Errorf("create admin profile: %w", err)
	}
	s.audit.Record(logging.AuthEventAdminCreated, profile.Email, profile.ID, "", "")
	return nil
}

// CleanupExpired removes expired sessions from the store.
func (s *Service) CleanupExpired(ctx context.Context) (int, error) {
	return s.sessions.CleanupExpired(ctx)
}
