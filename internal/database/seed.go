// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/models"
)

const posterBase = "https://image.tmdb.org/t/p/w500/"

// StarterCatalog is the film set inserted by SeedCatalog.
var StarterCatalog = []models.FilmInput{
	{Title: "Inception", Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.", PosterURL: posterBase + "9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg", Genres: []string{"Action", "Science Fiction", "Adventure"}},
	{Title: "Interstellar", Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.", PosterURL: posterBase + "gEU2QniL6E77NI6lCU6MxlNBvIx.jpg", Genres: []string{"Adventure", "Drama", "Science Fiction"}},
	{Title: "The Dark Knight", Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.", PosterURL: posterBase + "qJ2tW6WMUDux911r6m7haRef0WH.jpg", Genres: []string{"Drama", "Action", "Crime", "Thriller"}},
	{Title: "Dune: Part Two", Description: "Paul Atreides unites with Chani and the Fremen while on a warpath of revenge against the conspirators who destroyed his family.", PosterURL: posterBase + "1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg", Genres: []string{"Science Fiction", "Adventure"}},
	{Title: "Oppenheimer", Description: "The story of J. Robert Oppenheimer's role in the development of the atomic bomb during World War II.", PosterURL: posterBase + "8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg", Genres: []string{"Drama", "History"}},
	{Title: "The Matrix", Description: "When a beautiful stranger leads computer hacker Neo to a forbidding underworld, he discovers the shocking truth--the life he knows is the elaborate deception of an evil cyber-intelligence.", PosterURL: posterBase + "f89U3ADr1oiB1s9GkdPOEpQUk5H.jpg", Genres: []string{"Action", "Science Fiction"}},
	{Title: "Pulp Fiction", Description: "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.", PosterURL: posterBase + "d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg", Genres: []string{"Thriller", "Crime"}},
	{Title: "Fight Club", Description: "An insomniac office worker and a devil-may-care soapmaker form an underground fight club that evolves into something much, much more.", PosterURL: posterBase + "pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg", Genres: []string{"Drama"}},
	{Title: "Forrest Gump", Description: "The presidencies of Kennedy and Johnson, the events of Vietnam, Watergate and other historical events unfold from the perspective of an Alabama man with an IQ of 75, whose only desire is to be reunited with his childhood sweetheart.", PosterURL: posterBase + "arw2vcBveWOVZr6pxd9XTd1TdQa.jpg", Genres: []string{"Comedy", "Drama", "Romance"}},
	{Title: "The Shawshank Redemption", Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.", PosterURL: posterBase + "q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg", Genres: []string{"Drama", "Crime"}},
	{Title: "The Godfather", Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.", PosterURL: posterBase + "3bhkrj58Vtu7enYsRolD1fZdja1.jpg", Genres: []string{"Drama", "Crime"}},
	{Title: "Spider-Man: Across the Spider-Verse", Description: "Miles Morales catapults across the Multiverse, where he encounters a team of Spider-People charged with protecting its very existence.", PosterURL: posterBase + "8Vt6mWEReuy4Of61Lnj5Xj704m8.jpg", Genres: []string{"Animation", "Action", "Adventure"}},
	{Title: "Avengers: Endgame", Description: "After the devastating events of Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more in order to reverse Thanos' actions and restore balance to the universe.", PosterURL: posterBase + "or06FN3Dka5tukK1e9sl16pB3iy.jpg", Genres: []string{"Adventure", "Science Fiction", "Action"}},
	{Title: "Joker", Description: "During the 1980s, a failed stand-up comedian is driven insane and turns to a life of crime and chaos in Gotham City while becoming an infamous psychopathic crime figure.", PosterURL: posterBase + "udDclJoHjfjb8Ekgsd4FDteOkCU.jpg", Genres: []string{"Crime", "Thriller", "Drama"}},
	{Title: "Parasite", Description: "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.", PosterURL: posterBase + "7IiTTgloJzvGI1TAYymCfbfl3vT.jpg", Genres: []string{"Comedy", "Thriller", "Drama"}},
	{Title: "Whiplash", Description: "A promising young drummer enrolls at a cut-throat music conservatory where his dreams of greatness are mentored by an instructor who will stop at nothing to realize a student's potential.", PosterURL: posterBase + "6uSPcdGNA2A6vJmCagXlhp91T61.jpg", Genres: []string{"Drama", "Music"}},
	{Title: "The Grand Budapest Hotel", Description: "A writer encounters the owner of an aging high-class hotel, who tells him of his early years serving as a lobby boy in the hotel's glorious years under an exceptional concierge.", PosterURL: posterBase + "eWdyYQreja6JGCzqHWXpWHDrrPo.jpg", Genres: []string{"Comedy", "Drama"}},
	{Title: "Blade Runner 2049", Description: "Young Blade Runner K's discovery of a long-buried secret leads him to track down former Blade Runner Rick Deckard, who's been missing for thirty years.", PosterURL: posterBase + "gajva2L0rPYkEWjzgFlBXCAVBE5.jpg", Genres: []string{"Science Fiction", "Drama"}},
	{Title: "Mad Max: Fury Road", Description: "In a post-apocalyptic wasteland, a woman rebels against a tyrannical ruler in search for her homeland with the aid of a group of female prisoners, a psychotic worshiper, and a drifter named Max.", PosterURL: posterBase + "8tZYtuWezp8JbcsvHYO0O46tFbo.jpg", Genres: []string{"Action", "Adventure", "Science Fiction"}},
	{Title: "Gladiator", Description: "A former Roman General sets out to exact vengeance against the corrupt emperor who murdered his family and sent him into slavery.", PosterURL: posterBase + "ty8TGRuvJLPUmAR1H1nRIsgwvim.jpg", Genres: []string{"Action", "Drama", "Adventure"}},
}

// SeedResult reports which starter titles were inserted.
type SeedResult struct {
	Inserted []string `json:"inserted"`
	Skipped  []string `json:"skipped"`
}

// SeedCatalog inserts every StarterCatalog film whose title is not already
// present. Safe to run repeatedly.
func (db *DB) SeedCatalog(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{Inserted: []string{}, Skipped: []string{}}

	for i := range StarterCatalog {
		film := &StarterCatalog[i]
		exists, err := db.FilmExistsByTitle(ctx, film.Title)
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped = append(result.Skipped, film.Title)
			continue
		}
		if _, err := db.CreateFilm(ctx, film); err != nil {
			return result, fmt.Errorf("failed to seed %q: %w", film.Title, err)
		}
		result.Inserted = append(result.Inserted, film.Title)
	}

	logging.Info().
		Int("inserted", len(result.Inserted)).
		Int("skipped", len(result.Skipped)).
		Msg("Catalog seeded")
	return result, nil
}
