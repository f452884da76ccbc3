// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package validation

import (
	"strings"

	"github.com/tomtom215/filmlerim/internal/models"
)

// FilmForm is the admin create/edit film form.
type FilmForm struct {
	Title       string   `json:"title" validate:"notblank,trimmin=2,trimmax=100"`
	Description string   `json:"description" validate:"notblank,trimmin=10,trimmax=1000"`
	PosterURL   string   `json:"poster_url" validate:"notblank,httpurl"`
	Genres      []string `json:"genres" validate:"max=10,dive,notblank,trimmax=40"`
	TMDBID      *int64   `json:"tmdb_id" validate:"omitempty,gt=0"`
	TrailerURL  string   `json:"trailer_url" validate:"omitempty,httpurl"`
}

// Input returns the trimmed film input.
func (f *FilmForm) Input() *models.FilmInput {
	genres := make([]string, 0, len(f.Genres))
	for _, g := range f.Genres {
		genres = append(genres, strings.TrimSpace(g))
	}
	return &models.FilmInput{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		PosterURL:   strings.TrimSpace(f.PosterURL),
		Genres:      genres,
		TMDBID:      f.TMDBID,
		TrailerURL:  strings.TrimSpace(f.TrailerURL),
	}
}

// ValidateFilmInput applies the FilmForm rules to a film assembled
// elsewhere, such as a TMDB import.
func ValidateFilmInput(in *models.FilmInput) *RequestValidationError {
	return ValidateStruct(&FilmForm{
		Title:       in.Title,
		Description: in.Description,
		PosterURL:   in.PosterURL,
		Genres:      in.Genres,
		TMDBID:      in.TMDBID,
		TrailerURL:  in.TrailerURL,
	})
}

// CommentForm is the comment composer.
type CommentForm struct {
	Text   string `json:"text" validate:"notblank,trimmin=3,trimmax=500"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// Input returns the trimmed comment input.
func (f *CommentForm) Input() *models.CommentInput {
	return &models.CommentInput{Text: strings.TrimSpace(f.Text), Rating: f.Rating}
}

// SignupForm creates an account.
type SignupForm struct {
	Email           string `json:"email" validate:"notblank,looseemail"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	PasswordConfirm string `json:"password_confirm" validate:"eqfield=Password"`
}

// LoginForm starts a session.
type LoginForm struct {
	Email    string `json:"email" validate:"notblank,looseemail"`
	Password string `json:"password" validate:"required"`
}

// ProfileForm edits the profile card.
type ProfileForm struct {
	Bio       string `json:"bio" validate:"trimmax=500"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,httpurl"`
}

// Normalize trims both fields in place.
func (f *ProfileForm) Normalize() {
	f.Bio = strings.TrimSpace(f.Bio)
	f.AvatarURL = strings.TrimSpace(f.AvatarURL)
}

// PreferencesForm sets theme and language.
type PreferencesForm struct {
	Theme    string `json:"theme" validate:"oneof=light dark"`
	Language string `json:"language" validate:"oneof=tr en"`
}

// Preferences returns the form as stored preferences.
func (f *PreferencesForm) Preferences() models.Preferences {
	return models.Preferences{Theme: f.Theme, Language: f.Language}
}

// WatchlistForm sets a film's watchlist status.
type WatchlistForm struct {
	Status models.WatchStatus `json:"status" validate:"required,oneof=to_watch watched"`
}

// ImportForm is a bulk TMDB import request.
type ImportForm struct {
	TMDBIDs []int64 `json:"tmdb_ids" validate:"min=1,max=50,dive,gt=0"`
}
