// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package services

import (
	"context"
	"time"

	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/metrics"
)

// SessionCleaner removes expired sessions. *auth.Service implements it.
type SessionCleaner interface {
	CleanupExpired(ctx context.Context) (int, error)
}

// SessionCounter reports live sessions. Every auth.SessionStore implements
// it.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// SessionCleanupService purges expired sessions on an interval and keeps
// the active-sessions gauge current. It runs once immediately on start.
type SessionCleanupService struct {
	cleaner  SessionCleaner
	counter  SessionCounter
	interval time.Duration
	name     string
}

// NewSessionCleanupService creates the service. A non-positive interval
// becomes 15 minutes.
func NewSessionCleanupService(cleaner SessionCleaner, counter SessionCounter, interval time.Duration) *SessionCleanupService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &SessionCleanupService{
		cleaner:  cleaner,
		counter:  counter,
		interval: interval,
		name:     "session-cleanup",
	}
}

// Serve implements suture.Service. Cleanup failures are logged, not
// returned; a flaky store should not put the service into backoff.
func (s *SessionCleanupService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *SessionCleanupService) runOnce(ctx context.Context) {
	removed, err := s.cleaner.CleanupExpired(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Session cleanup failed")
	} else if removed > 0 {
		logging.Info().Int("removed", removed).Msg("Expired sessions removed")
	}

	if s.counter == nil {
		return
	}
	count, err := s.counter.Count(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to count sessions")
		return
	}
	metrics.ActiveSessions.Set(float64(count))
}

// String implements fmt.Stringer.
func (s *SessionCleanupService) String() string {
	return s.name
}
