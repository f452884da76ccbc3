// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"

	"github.com/tomtom215/filmlerim/internal/models"
)

// DefaultPageSize is the dashboard grid size.
const DefaultPageSize = 12

// FilterOptions selects films. Zero values match everything.
type FilterOptions struct {
	Query string
	Genre string
}

// SortKey names a catalog ordering.
type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortAZ       SortKey = "az"
	SortTopRated SortKey = "top_rated"
)

// ParseSortKey returns the key for s, defaulting to SortNewest.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortAZ:
		return SortAZ
	case SortTopRated:
		return SortTopRated
	default:
		return SortNewest
	}
}

// Filter returns the films whose title or description contains the trimmed
// query (case-insensitively) and, when a genre is given, that carry it.
// Order is preserved and the input is not modified.
func Filter(films []models.Film, opts FilterOptions) []models.Film {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(opts.Query))
	genre := strings.TrimSpace(opts.Genre)

	out := make([]models.Film, 0, len(films))
	for i := range films {
		f := &films[i]
		if genre != "" && !f.HasGenre(genre) {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(f.Title), query) &&
			!strings.Contains(fold.String(f.Description), query) {
			continue
		}
		out = append(out, *f)
	}
	return out
}

// Sort returns a sorted copy of films. lang selects the collation for
// SortAZ.
func Sort(films []models.Film, key SortKey, lang string) []models.Film {
	out := make([]models.Film, len(films))
	copy(out, films)

	switch key {
	case SortAZ:
		col := collate.New(languageTag(lang), collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			if c := col.CompareString(out[i].Title, out[j].Title); c != 0 {
				return c < 0
			}
			return out[i].ID < out[j].ID
		})
	case SortTopRated:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := &out[i], &out[j]
			if a.AverageRating != b.AverageRating {
				return a.AverageRating > b.AverageRating
			}
			if a.CommentCount != b.CommentCount {
				return a.CommentCount > b.CommentCount
			}
			return a.ID < b.ID
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := &out[i], &out[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		})
	}
	return out
}

// Page is one page of a paginated slice.
type Page[T any] struct {
	Items []T `json:"items"`
	models.Pagination
}

// Paginate returns the 1-indexed page of items. Pages below 1 clamp to 1,
// a non-positive size uses DefaultPageSize, and a page past the end is
// empty.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	result := Page[T]{
		Items: []T{},
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: pageCount(total, pageSize),
		},
	}

	// Compare page counts before multiplying; a huge page would overflow.
	if page > result.TotalPages {
		return result
	}
	start := (page - 1) * pageSize
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}
	result.Items = append(result.Items, items[start:end]...)
	return result
}

// pageCount is ceil(total/pageSize) without the overflow of total+pageSize-1.
func pageCount(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total-1)/pageSize + 1
}
