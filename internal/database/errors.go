// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/tomtom215/filmlerim/internal/logging"
)

var (
	// ErrNotFound is returned when a row addressed by key does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert violates a unique constraint.
	ErrConflict = errors.New("conflict")
)

// isConstraintViolation matches DuckDB's unique/primary key errors.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate key") ||
		strings.Contains(msg, "violates primary key constraint") ||
		strings.Contains(msg, "violates unique constraint")
}

// closeWithLog closes a resource and logs a failure.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where Close errors are not
// actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
