// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/filmlerim/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func validFilmForm() FilmForm {
	return FilmForm{
		Title:       "Inception",
		Description: "A thief who steals corporate secrets.",
		PosterURL:   "https://image.tmdb.org/t/p/w500/inception.jpg",
		Genres:      []string{"Action", "Science Fiction"},
	}
}

func TestFilmForm(t *testing.T) {
	tmdbID := int64(-1)

	tests := []struct {
		name      string
		mutate    func(f *FilmForm)
		wantField string
		wantMsg   string
	}{
		{"valid", func(f *FilmForm) {}, "", ""},
		{"empty title", func(f *FilmForm) { f.Title = "" }, "title", "title is required"},
		{"blank title", func(f *FilmForm) { f.Title = "   " }, "title", "title is required"},
		{"short title after trim", func(f *FilmForm) { f.Title = " A " }, "title", "title must be at least 2 characters"},
		{"long title", func(f *FilmForm) { f.Title = strings.Repeat("x", 101) }, "title", "title must be at most 100 characters"},
		{"short description", func(f *FilmForm) { f.Description = "too short" }, "description", "description must be at least 10 characters"},
		{"poster not a url", func(f *FilmForm) { f.PosterURL = "poster.jpg" }, "poster_url", "poster_url must be a valid http or https URL"},
		{"poster ftp", func(f *FilmForm) { f.PosterURL = "ftp://example.com/p.jpg" }, "poster_url", "poster_url must be a valid http or https URL"},
		{"too many genres", func(f *FilmForm) { f.Genres = make([]string, 11) }, "genres", "genres must be at most 10 items"},
		{"blank genre", func(f *FilmForm) { f.Genres = []string{"Drama", " "} }, "genres[1]", "genres[1] is required"},
		{"bad trailer", func(f *FilmForm) { f.TrailerURL = "youtube" }, "trailer_url", "trailer_url must be a valid http or https URL"},
		{"negative tmdb id", func(f *FilmForm) { f.TMDBID = &tmdbID }, "tmdb_id", "tmdb_id must be greater than 0"},
		{"rune length", func(f *FilmForm) { f.Title = "Çö" }, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validFilmForm()
			tt.mutate(&form)

			verr := ValidateStruct(&form)
			if tt.wantMsg == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			first := verr.Errors()[0]
			if first.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", first.Field(), tt.wantField)
			}
			if verr.First() != tt.wantMsg {
				t.Errorf("First() = %q, want %q", verr.First(), tt.wantMsg)
			}
		})
	}
}

func TestFilmFormInputTrims(t *testing.T) {
	form := FilmForm{
		Title:       "  Inception ",
		Description: " Dreams within dreams. ",
		PosterURL:   " https://x.test/p.jpg",
		Genres:      []string{" Action "},
	}
	in := form.Input()
	if in.Title != "Inception" || in.Description != "Dreams within dreams." || in.PosterURL != "https://x.test/p.jpg" {
		t.Errorf("Input() = %+v", in)
	}
	if in.Genres[0] != "Action" {
		t.Errorf("Genres = %v", in.Genres)
	}
}

func TestValidateFilmInput(t *testing.T) {
	form := validFilmForm()
	if verr := ValidateFilmInput(form.Input()); verr != nil {
		t.Fatalf("ValidateFilmInput(valid) = %v", verr)
	}

	verr := ValidateFilmInput(&models.FilmInput{Title: "Bare Import"})
	if verr == nil {
		t.Fatal("ValidateFilmInput(no overview, no poster) = nil, want error")
	}
	fields := make([]string, 0, len(verr.Errors()))
	for _, e := range verr.Errors() {
		fields = append(fields, e.Field())
	}
	if got := strings.Join(fields, ","); got != "description,poster_url" {
		t.Errorf("fields = %s, want description,poster_url", got)
	}
}

func TestCommentForm(t *testing.T) {
	tests := []struct {
		name    string
		form    CommentForm
		wantMsg string
	}{
		{"valid", CommentForm{Text: "Loved it", Rating: 5}, ""},
		{"two characters", CommentForm{Text: "ok", Rating: 4}, "text must be at least 3 characters"},
		{"padded two characters", CommentForm{Text: "  ok  ", Rating: 4}, "text must be at least 3 characters"},
		{"too long", CommentForm{Text: strings.Repeat("a", 501), Rating: 4}, "text must be at most 500 characters"},
		{"rating zero", CommentForm{Text: "Loved it", Rating: 0}, "rating must be at least 1"},
		{"rating six", CommentForm{Text: "Loved it", Rating: 6}, "rating must be at most 5"},
		{"first violation wins", CommentForm{Text: "", Rating: 9}, "text is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.form)
			if tt.wantMsg == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() = nil, want %q", tt.wantMsg)
			}
			if verr.First() != tt.wantMsg {
				t.Errorf("First() = %q, want %q", verr.First(), tt.wantMsg)
			}
		})
	}
}

func TestSignupAndLoginForms(t *testing.T) {
	tests := []struct {
		name    string
		form    interface{}
		wantMsg string
	}{
		{"signup valid", &SignupForm{Email: "deniz@example.com", Password: "secret1", PasswordConfirm: "secret1"}, ""},
		{"signup bad email", &SignupForm{Email: "deniz@example", Password: "secret1", PasswordConfirm: "secret1"}, "email must be a valid email address"},
		{"signup email with space", &SignupForm{Email: "de niz@example.com", Password: "secret1", PasswordConfirm: "secret1"}, "email must be a valid email address"},
		{"signup short password", &SignupForm{Email: "deniz@example.com", Password: "12345", PasswordConfirm: "12345"}, "password must be at least 6 characters"},
		{"signup mismatch", &SignupForm{Email: "deniz@example.com", Password: "secret1", PasswordConfirm: "secret2"}, "password_confirm does not match"},
		{"login valid", &LoginForm{Email: "a@b.co", Password: "x"}, ""},
		{"login missing password", &LoginForm{Email: "a@b.co"}, "password is required"},
		{"login missing email", &LoginForm{Password: "x"}, "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.form)
			if tt.wantMsg == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v", verr)
				}
				return
			}
			if verr == nil || verr.First() != tt.wantMsg {
				t.Errorf("ValidateStruct() = %v, want %q", verr, tt.wantMsg)
			}
		})
	}
}

func TestSmallForms(t *testing.T) {
	tests := []struct {
		name    string
		form    interface{}
		wantErr bool
	}{
		{"profile empty", &ProfileForm{}, false},
		{"profile avatar", &ProfileForm{AvatarURL: "https://example.com/a.png"}, false},
		{"profile bad avatar", &ProfileForm{AvatarURL: "avatar.png"}, true},
		{"profile long bio", &ProfileForm{Bio: strings.Repeat("b", 501)}, true},
		{"prefs valid", &PreferencesForm{Theme: "dark", Language: "en"}, false},
		{"prefs bad theme", &PreferencesForm{Theme: "blue", Language: "en"}, true},
		{"prefs bad language", &PreferencesForm{Theme: "light", Language: "de"}, true},
		{"watchlist valid", &WatchlistForm{Status: models.WatchStatusWatched}, false},
		{"watchlist empty", &WatchlistForm{}, true},
		{"watchlist unknown", &WatchlistForm{Status: "dropped"}, true},
		{"import valid", &ImportForm{TMDBIDs: []int64{27205, 155}}, false},
		{"import empty", &ImportForm{}, true},
		{"import too many", &ImportForm{TMDBIDs: make([]int64, 51)}, true},
		{"import zero id", &ImportForm{TMDBIDs: []int64{27205, 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.form)
			if (verr != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() = %v, wantErr %v", verr, tt.wantErr)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	form := CommentForm{Text: "x", Rating: 0}
	verr := ValidateStruct(&form)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("Errors() = %d, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "text must be at least 3 characters" {
		t.Errorf("Message = %q, want only the first violation", apiErr.Message)
	}
	if apiErr.Details["field"] != "text" {
		t.Errorf("Details[field] = %v", apiErr.Details["field"])
	}
	fields, ok := apiErr.Details["errors"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[errors] = %#v", apiErr.Details["errors"])
	}
	if fields[1]["field"] != "rating" {
		t.Errorf("second violation field = %v", fields[1]["field"])
	}

	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() = %q, want all messages joined", verr.Error())
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty Message = %q", empty.Message)
	}
}

func TestNewFieldError(t *testing.T) {
	verr := NewFieldError("status", "current", "status already set")
	if verr.First() != "status already set" || verr.Errors()[0].Tag() != "current" {
		t.Errorf("NewFieldError() = %+v", verr.Errors())
	}
}
