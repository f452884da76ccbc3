// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/filmlerim/internal/models"
)

func TestSignupAndLogin(t *testing.T) {
	svc, profiles, sessions := newTestService(t, testSecurityConfig())
	ctx := context.Background()

	res, err := svc.Signup(ctx, "  Deniz@Example.com ", "secret1", "127.0.0.1")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if res.Token == "" || res.Profile.Email != "deniz@example.com" {
		t.Errorf("Signup() = %+v", res)
	}
	if res.Profile.Role != models.RoleStandard {
		t.Errorf("Role = %q, want standard", res.Profile.Role)
	}
	if res.Profile.Preferences.Language != "tr" {
		t.Errorf("Preferences = %+v, want defaults", res.Profile.Preferences)
	}
	stored, _ := profiles.GetProfileByEmail(ctx, "deniz@example.com")
	if stored.PasswordHash == "secret1" || !CheckPassword(stored.PasswordHash, "secret1") {
		t.Error("password not stored as bcrypt hash")
	}

	if _, err := svc.Signup(ctx, "deniz@example.com", "other12", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Signup() error = %v, want ErrEmailTaken", err)
	}

	login, err := svc.Login(ctx, "DENIZ@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if n, _ := sessions.Count(ctx); n != 2 {
		t.Errorf("sessions = %d, want 2", n)
	}

	session, err := svc.Authenticate(ctx, login.Token)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if session.UserID != res.Profile.ID {
		t.Errorf("session user = %q, want %q", session.UserID, res.Profile.ID)
	}

	if _, err := svc.Login(ctx, "deniz@example.com", "wrong", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v", err)
	}
	if _, err := svc.Login(ctx, "ghost@example.com", "secret1", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, _ := newTestService(t, testSecurityConfig())
	ctx := context.Background()

	res, err := svc.Signup(ctx, "a@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	session, err := svc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}

	if err := svc.Logout(ctx, session, ""); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := svc.Authenticate(ctx, res.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Authenticate() after logout error = %v, want ErrSessionNotFound", err)
	}
}

func TestSignupAdminEmail(t *testing.T) {
	cfg := testSecurityConfig()
	cfg.AdminPassword = "bootstrap-pass"
	svc, _, _ := newTestService(t, cfg)

	res, err := svc.Signup(context.Background(), "Admin@Example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if !res.Profile.IsAdmin() || !res.Session.IsAdmin() {
		t.Error("ADMIN_EMAIL signup should receive the admin role")
	}
}

func TestSignupAdminEmailWithoutPasswordStaysStandard(t *testing.T) {
	svc, _, _ := newTestService(t, testSecurityConfig())

	res, err := svc.Signup(context.Background(), "admin@example.com", "secret1", "")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if res.Profile.IsAdmin() || res.Session.IsAdmin() {
		t.Error("ADMIN_EMAIL without ADMIN_PASSWORD must not grant the admin role")
	}
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without password", func(t *testing.T) {
		svc, profiles, _ := newTestService(t, testSecurityConfig())
		if err := svc.EnsureAdmin(ctx); err != nil {
			t.Fatalf("EnsureAdmin() error = %v", err)
		}
		if len(profiles.profiles) != 0 {
			t.Error("no account should be created")
		}
	})

	t.Run("creates admin", func(t *testing.T) {
		cfg := testSecurityConfig()
		cfg.AdminPassword = "bootstrap-pass"
		svc, profiles, _ := newTestService(t, cfg)

		if err := svc.EnsureAdmin(ctx); err != nil {
			t.Fatalf("EnsureAdmin() error = %v", err)
		}
		if err := svc.EnsureAdmin(ctx); err != nil {
			t.Fatalf("second EnsureAdmin() error = %v", err)
		}
		if len(profiles.profiles) != 1 {
			t.Fatalf("profiles = %d, want 1", len(profiles.profiles))
		}
		if _, err := svc.Login(ctx, "admin@example.com", "bootstrap-pass", ""); err != nil {
			t.Errorf("admin Login() error = %v", err)
		}
	})

	t.Run("promotes existing", func(t *testing.T) {
		cfg := testSecurityConfig()
		cfg.AdminPassword = "bootstrap-pass"
		svc, profiles, _ := newTestService(t, cfg)

		existing := &models.Profile{ID: "p1", Email: "admin@example.com", PasswordHash: "h", Role: models.RoleStandard}
		if err := profiles.CreateProfile(ctx, existing); err != nil {
			t.Fatalf("CreateProfile() error = %v", err)
		}
		if err := svc.EnsureAdmin(ctx); err != nil {
			t.Fatalf("EnsureAdmin() error = %v", err)
		}
		p, _ := profiles.GetProfileByID(ctx, "p1")
		if !p.IsAdmin() {
			t.Error("existing account was not promoted")
		}
	})
}
