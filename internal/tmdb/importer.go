// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package tmdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/metrics"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/validation"
)

// FilmSource builds a catalog film for a TMDB id. *Client implements it.
type FilmSource interface {
	FilmInput(ctx context.Context, id int64) (*models.FilmInput, error)
}

// FilmStore is the catalog side of an import. *database.DB implements it.
type FilmStore interface {
	ExistingTMDBIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
	CreateFilm(ctx context.Context, in *models.FilmInput) (*models.Film, error)
}

// Importer copies TMDB films into the catalog.
type Importer struct {
	source FilmSource
	store  FilmStore
}

// NewImporter creates an importer.
func NewImporter(source FilmSource, store FilmStore) *Importer {
	return &Importer{source: source, store: store}
}

// Import fetches and inserts each id in order. Ids already in the catalog
// (or repeated in the request) are skipped. Ids TMDB does not know, and
// movies that fail the film form rules (no poster, overview too short or
// too long), are reported as failed with a reason. Any other error stops
// the batch and is returned with the partial result.
func (im *Importer) Import(ctx context.Context, ids []int64) (*models.ImportResult, error) {
	result := &models.ImportResult{Imported: []models.Film{}, Skipped: []int64{}}
	defer func() {
		metrics.RecordImport(len(result.Imported), len(result.Skipped), len(result.Failed))
	}()

	existing, err := im.store.ExistingTMDBIDs(ctx, ids)
	if err != nil {
		return result, fmt.Errorf("failed to check existing films: %w", err)
	}

	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if existing[id] || seen[id] {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		seen[id] = true

		in, err := im.source.FilmInput(ctx, id)
		if errors.Is(err, ErrNoResults) {
			addFailure(result, id, "not found on TMDB")
			continue
		}
		if err != nil {
			return result, err
		}
		if verr := validation.ValidateFilmInput(in); verr != nil {
			logging.Ctx(ctx).Info().Int64("tmdb_id", id).Str("reason", verr.Error()).Msg("TMDB film rejected")
			addFailure(result, id, verr.First())
			continue
		}

		film, err := im.store.CreateFilm(ctx, in)
		if errors.Is(err, database.ErrConflict) {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to store tmdb film %d: %w", id, err)
		}
		result.Imported = append(result.Imported, *film)
	}

	logging.Ctx(ctx).Info().
		Int("imported", len(result.Imported)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Msg("TMDB import finished")
	return result, nil
}

func addFailure(result *models.ImportResult, id int64, reason string) {
	result.Failed = append(result.Failed, id)
	if result.Reasons == nil {
		result.Reasons = make(map[int64]string)
	}
	result.Reasons[id] = reason
}
