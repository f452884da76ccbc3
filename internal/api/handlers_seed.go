// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/filmlerim/internal/logging"
)

// seedTimeout bounds a manual seed; twenty inserts take well under a second.
const seedTimeout = 2 * time.Minute

// SeedCatalog inserts the starter films that are not already in the
// catalog. Running it again inserts nothing.
//
// @Summary Seed the starter catalog
// @Description Inserts the twenty starter films, skipping titles already present
// @Tags admin
// @Produce json
// @Success 200 {object} models.APIResponse{data=database.SeedResult} "Seeding successful"
// @Failure 403 {object} models.APIResponse "Admin role required"
// @Failure 500 {object} models.APIResponse "Seeding failed"
// @Router /api/v1/admin/seed [post]
func (h *Handler) SeedCatalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), seedTimeout)
	defer cancel()

	result, err := h.db.SeedCatalog(ctx)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logging.Ctx(ctx).Info().
		Int("inserted", len(result.Inserted)).
		Int("skipped", len(result.Skipped)).
		Msg("Starter catalog seeded on request")

	respondSuccess(w, http.StatusOK, result, start)
}
