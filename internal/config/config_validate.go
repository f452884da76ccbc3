// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	minJWTSecretLength   = 32
	minRateLimitRequests = 1
	maxRateLimitRequests = 10000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
	minBcryptCost        = 4
	maxBcryptCost        = 31
	minAdminPassword     = 6
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

var placeholderSecrets = []string{"changeme", "change-me", "replace_me", "your-secret", "example"}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateDatabase,
		c.validateServer,
		c.validateAPI,
		c.validateSecurity,
		c.validateTMDB,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.PageSize < 1 {
		return fmt.Errorf("API_PAGE_SIZE must be at least 1")
	}
	if c.API.MaxPageSize < c.API.PageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least API_PAGE_SIZE (%d)", c.API.PageSize)
	}
	if c.API.DefaultTheme != "light" && c.API.DefaultTheme != "dark" {
		return fmt.Errorf("DEFAULT_THEME must be one of: light, dark")
	}
	if c.API.DefaultLanguage != "tr" && c.API.DefaultLanguage != "en" {
		return fmt.Errorf("DEFAULT_LANGUAGE must be one of: tr, en")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if err := c.validateJWTSecret(); err != nil {
		return err
	}
	if err := c.validateSessionStore(); err != nil {
		return err
	}
	if err := c.validateAdminBootstrap(); err != nil {
		return err
	}
	if c.Security.BcryptCost < minBcryptCost || c.Security.BcryptCost > maxBcryptCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", minBcryptCost, maxBcryptCost)
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

func (c *Config) validateJWTSecret() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters for security", minJWTSecretLength)
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

func (c *Config) validateSessionStore() error {
	switch c.Security.SessionStore {
	case "memory":
	case "badger":
		if strings.TrimSpace(c.Security.SessionStorePath) == "" {
			return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE is badger")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be one of: memory, badger")
	}
	if c.Security.SessionTimeout < time.Minute {
		return fmt.Errorf("SESSION_TIMEOUT must be at least 1m")
	}
	return nil
}

// validateAdminBootstrap requires ADMIN_EMAIL and ADMIN_PASSWORD together.
// An email alone would hand the admin role to whoever signs up with it first.
func (c *Config) validateAdminBootstrap() error {
	if c.Security.AdminPassword != "" && c.Security.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required when ADMIN_PASSWORD is set")
	}
	if c.Security.AdminEmail != "" && c.Security.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}
	if c.Security.AdminPassword != "" && len(c.Security.AdminPassword) < minAdminPassword {
		return fmt.Errorf("ADMIN_PASSWORD must be at least %d characters", minAdminPassword)
	}
	return nil
}

// validateCORS rejects wildcard origins in production; cookies carry the
// session token.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://filmlerim.example.com " +
			"or use ENVIRONMENT=development for local testing")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.TMDB.ImageBaseURL, "TMDB_IMAGE_BASE_URL"); err != nil {
		return err
	}
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDB.RequestsPerSecond <= 0 {
		return fmt.Errorf("TMDB_REQUESTS_PER_SECOND must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// IsProduction returns true for ENVIRONMENT=production or prod.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true for an empty ENVIRONMENT, development or dev.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

func containsPlaceholder(value string) bool {
	lower := strings.ToLower(value)
	for _, p := range placeholderSecrets {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
