// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/filmlerim/internal/models"
)

const profileSelect = `
SELECT id, email, password_hash, role, bio, avatar_url,
       COALESCE(theme, 'light'), COALESCE(language, 'tr'), created_at, updated_at
FROM profiles`

func scanProfile(row rowScanner) (*models.Profile, error) {
	var p models.Profile
	var role string
	if err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &role, &p.Bio, &p.AvatarURL,
		&p.Preferences.Theme, &p.Preferences.Language, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Role = models.Role(role)
	return &p, nil
}

// CreateProfile inserts a new account. The email is stored lower-cased; a
// taken email returns ErrConflict.
func (db *DB) CreateProfile(ctx context.Context, p *models.Profile) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	now := db.now()
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Role == "" {
		p.Role = models.RoleStandard
	}

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO profiles (id, email, password_hash, role, bio, avatar_url, theme, language, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.PasswordHash, string(p.Role), p.Bio, p.AvatarURL,
		p.Preferences.Theme, p.Preferences.Language, now, now)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// GetProfileByID returns the profile or ErrNotFound.
func (db *DB) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	p, err := scanProfile(db.conn.QueryRowContext(ctx, profileSelect+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetProfileByEmail looks an account up case-insensitively.
func (db *DB) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	p, err := scanProfile(db.conn.QueryRowContext(ctx, profileSelect+` WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email))))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return p, nil
}

// UpdateProfileDetails changes the bio and avatar.
func (db *DB) UpdateProfileDetails(ctx context.Context, id, bio, avatarURL string) (*models.Profile, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE profiles SET bio = ?, avatar_url = ?, updated_at = ? WHERE id = ?`,
		bio, avatarURL, db.now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return db.GetProfileByID(ctx, id)
}

// UpdatePreferences stores theme and language.
func (db *DB) UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) (*models.Profile, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE profiles SET theme = ?, language = ?, updated_at = ? WHERE id = ?`,
		prefs.Theme, prefs.Language, db.now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return db.GetProfileByID(ctx, id)
}

// SetRole changes an account's role.
func (db *DB) SetRole(ctx context.Context, id string, role models.Role) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE profiles SET role = ?, updated_at = ? WHERE id = ?`, string(role), db.now(), id)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
