// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package social

import (
	"errors"
	"fmt"

	"github.com/tomtom215/filmlerim/internal/models"
)

var (
	// ErrToggleInFlight rejects a like toggle while another toggle for the
	// same comment and user is running.
	ErrToggleInFlight = errors.New("like toggle already in progress")

	// ErrForbidden is returned when a user edits or deletes a comment they
	// did not write.
	ErrForbidden = errors.New("not the comment author")

	// ErrInvalidStatus rejects an unknown watchlist status.
	ErrInvalidStatus = errors.New("invalid watchlist status")
)

// ToggleError is a failed like write. State is the stored state read back
// after the failure, or nil when that read failed too.
type ToggleError struct {
	State *models.LikeState
	Err   error
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("like toggle failed: %v", e.Err)
}

func (e *ToggleError) Unwrap() error {
	return e.Err
}
