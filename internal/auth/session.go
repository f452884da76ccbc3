// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/filmlerim/internal/models"
)

// Session-related errors
var (
	// ErrSessionNotFound is returned when a session is not in the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when a stored session is past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// Session is an authenticated login.
type Session struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	Email          string      `json:"email"`
	Role           models.Role `json:"role"`
	CreatedAt      time.Time   `json:"created_at"`
	ExpiresAt      time.Time   `json:"expires_at"`
	LastAccessedAt time.Time   `json:"last_accessed_at"`
}

// IsExpired reports whether the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsAdmin reports whether the session belongs to an admin.
func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// NewSession creates a session for profile valid for duration.
func NewSession(profile *models.Profile, duration time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             generateSessionID(),
		UserID:         profile.ID,
		Email:          profile.Email,
		Role:           profile.Role,
		CreatedAt:      now,
		ExpiresAt:      now.Add(duration),
		LastAccessedAt: now,
	}
}

// generateSessionID returns 32 random bytes, hex encoded.
func generateSessionID() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(bytes)
}

// SessionStore is a session storage backend.
type SessionStore interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get returns ErrSessionNotFound for unknown IDs and ErrSessionExpired
	// for sessions past their expiry.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Unknown IDs are not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes every session of a user and returns how many.
	DeleteByUserID(ctx context.Context, userID string) (int, error)

	// Touch records access and moves the expiry.
	Touch(ctx context.Context, id string, newExpiry time.Time) error

	// CleanupExpired removes expired sessions and returns how many.
	CleanupExpired(ctx context.Context) (int, error)

	// Count returns the number of stored sessions, expired or not.
	Count(ctx context.Context) (int, error)
}

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemorySessionStore creates an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]Session),
	}
}

// Create stores a copy of session.
func (s *MemorySessionStore) Create(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

// Get returns a copy of the stored session.
func (s *MemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// Delete removes a session by ID.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// DeleteByUserID removes all sessions for a user.
func (s *MemorySessionStore) DeleteByUserID(_ context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id := range s.sessions {
		if s.sessions[id].UserID == userID {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// Touch updates the last access time and expiry.
func (s *MemorySessionStore) Touch(_ context.Context, id string, newExpiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	session.LastAccessedAt = time.Now()
	session.ExpiresAt = newExpiry
	s.sessions[id] = session
	return nil
}

// CleanupExpired removes all expired sessions.
func (s *MemorySessionStore) CleanupExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id := range s.sessions {
		session := s.sessions[id]
		if session.IsExpired() {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// Count returns the number of stored sessions.
func (s *MemorySessionStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
