// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package services

import (
	"context"
	"time"

	"github.com/tomtom215/filmlerim/internal/logging"
)

// Checkpointer flushes the database write-ahead log. *database.DB
// implements it.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService checkpoints the database on an interval and once more
// on shutdown, so a restart replays as little WAL as possible.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	name     string
}

// NewCheckpointService creates the service. A non-positive interval becomes
// one hour.
func NewCheckpointService(db Checkpointer, interval time.Duration) *CheckpointService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CheckpointService{db: db, interval: interval, name: "duckdb-checkpoint"}
}

// Serve implements suture.Service.
func (s *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := s.db.Checkpoint(final); err != nil {
				logging.Warn().Err(err).Msg("Final checkpoint failed")
			}
			cancel()
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.db.Checkpoint(ctx); err != nil {
				logging.Warn().Err(err).Msg("Checkpoint failed")
				continue
			}
			logging.Debug().Dur("duration", time.Since(start)).Msg("Database checkpoint complete")
		}
	}
}

// String implements fmt.Stringer.
func (s *CheckpointService) String() string {
	return s.name
}
