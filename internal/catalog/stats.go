// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package catalog

import (
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/filmlerim/internal/models"
)

// ActivityMonths is the width of the profile activity chart.
const ActivityMonths = 6

// AverageRating returns the arithmetic mean of ratings, or 0 when empty.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// RoundRating rounds to one decimal place.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// RatingLabel formats an average with one decimal, e.g. "4.0".
func RatingLabel(avg float64) string {
	return fmt.Sprintf("%.1f", RoundRating(avg))
}

// GenreHistogram counts genre occurrences across films. Genres appear in
// the order first seen.
func GenreHistogram(genreLists [][]string) []models.GenreCount {
	index := make(map[string]int)
	hist := []models.GenreCount{}
	for _, genres := range genreLists {
		for _, g := range genres {
			if g == "" {
				continue
			}
			if i, ok := index[g]; ok {
				hist[i].Count++
				continue
			}
			index[g] = len(hist)
			hist = append(hist, models.GenreCount{Genre: g, Count: 1})
		}
	}
	return hist
}

// TopGenre returns the most frequent genre. Ties go to the one seen first;
// an empty histogram yields "".
func TopGenre(hist []models.GenreCount) string {
	best := ""
	bestCount := 0
	for _, gc := range hist {
		if gc.Count > bestCount {
			best, bestCount = gc.Genre, gc.Count
		}
	}
	return best
}

// MonthLabel renders a month as "Eki 2026" or "Oct 2026".
func MonthLabel(year int, month time.Month, lang string) string {
	names := monthAbbrev[NormalizeLanguage(lang)]
	return fmt.Sprintf("%s %d", names[month-1], year)
}

// MonthlyActivity buckets times into the ActivityMonths calendar months
// ending with now's month, oldest first. Months without activity are
// present with a zero count; times outside the window are ignored.
func MonthlyActivity(times []time.Time, now time.Time, lang string) []models.MonthBucket {
	loc := now.Location()
	start := time.Date(now.Year(), now.Month()-(ActivityMonths-1), 1, 0, 0, 0, 0, loc)

	buckets := make([]models.MonthBucket, ActivityMonths)
	index := make(map[string]int, ActivityMonths)
	for i := range buckets {
		m := start.AddDate(0, i, 0)
		key := m.Format("2006-01")
		buckets[i] = models.MonthBucket{Key: key, Label: MonthLabel(m.Year(), m.Month(), lang)}
		index[key] = i
	}

	for _, t := range times {
		if i, ok := index[t.In(loc).Format("2006-01")]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

// BuildProfileStats computes the profile screen aggregates from the user's
// favorite films and own comments.
func BuildProfileStats(favorites []models.Film, comments []models.Comment, now time.Time, lang string) models.ProfileStats {
	ratings := make([]int, len(comments))
	created := make([]time.Time, len(comments))
	for i := range comments {
		ratings[i] = comments[i].Rating
		created[i] = comments[i].CreatedAt
	}

	genreLists := make([][]string, len(favorites))
	for i := range favorites {
		genreLists[i] = favorites[i].Genres
	}
	hist := GenreHistogram(genreLists)
	avg := AverageRating(ratings)

	return models.ProfileStats{
		TotalFavorites: len(favorites),
		TotalComments:  len(comments),
		AverageRating:  RoundRating(avg),
		RatingLabel:    RatingLabel(avg),
		TopGenre:       TopGenre(hist),
		Genres:         hist,
		Monthly:        MonthlyActivity(created, now, lang),
	}
}
