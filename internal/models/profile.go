// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package models

import "time"

// Role is an account's authorization role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Profile is an account. PasswordHash never leaves the server.
type Profile struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Bio          string      `json:"bio,omitempty"`
	AvatarURL    string      `json:"avatar_url,omitempty"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// IsAdmin reports whether the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Preferences are per-user display settings.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// GenreCount is one bar of a genre histogram.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// MonthBucket is one month of comment activity.
type MonthBucket struct {
	Key   string `json:"key"` // 2026-10
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ProfileStats are the aggregates shown on the profile screen.
type ProfileStats struct {
	TotalFavorites int           `json:"total_favorites"`
	TotalComments  int           `json:"total_comments"`
	AverageRating  float64       `json:"average_rating"`
	RatingLabel    string        `json:"rating_label"`
	TopGenre       string        `json:"top_genre,omitempty"`
	Genres         []GenreCount  `json:"genres"`
	Monthly        []MonthBucket `json:"monthly"`
}

// ProfileView is the profile screen.
type ProfileView struct {
	Profile Profile      `json:"profile"`
	Stats   ProfileStats `json:"stats"`
}
