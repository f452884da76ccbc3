// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package tmdb

// genreLabels maps TMDB movie genre ids to catalog labels.
var genreLabels = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// GenreLabels maps ids in order, dropping unknown and repeated ids.
func GenreLabels(ids []int) []string {
	labels := make([]string, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		label, ok := genreLabels[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		labels = append(labels, label)
	}
	return labels
}
