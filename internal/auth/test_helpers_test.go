// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package auth

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/models"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef-test"

// fakeProfiles is an in-memory ProfileStore.
type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfiles) CreateProfile(_ context.Context, p *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	for _, existing := range f.profiles {
		if existing.Email == p.Email {
			return database.ErrConflict
		}
	}
	if p.Role == "" {
		p.Role = models.RoleStandard
	}
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeProfiles) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, p := range f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeProfiles) GetProfileByID(_ context.Context, id string) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfiles) SetRole(_ context.Context, id string, role models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return database.ErrNotFound
	}
	p.Role = role
	return nil
}

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:      testJWTSecret,
		SessionTimeout: time.Hour,
		BcryptCost:     4,
		AdminEmail:     "admin@example.com",
	}
}

func newTestService(t *testing.T, cfg *config.SecurityConfig) (*Service, *fakeProfiles, *MemorySessionStore) {
	t.Helper()
	profiles := newFakeProfiles()
	sessions := NewMemorySessionStore()
	svc, err := NewService(profiles, sessions, cfg, models.Preferences{Theme: "light", Language: "tr"})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	svc.SetAudit(logging.NewAuthAuditWithLogger(logging.NewTestLogger(io.Discard)))
	return svc, profiles, sessions
}
