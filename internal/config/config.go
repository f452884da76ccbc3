// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

// Package config loads Filmlerim's configuration.
//
// Values are layered, lowest priority first:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file (CONFIG_PATH, ./config.yaml, ./config.yml, /etc/filmlerim/config.yaml)
//  3. A .env file in the working directory (never overrides the real environment)
//  4. Environment variables
//
// The resulting Config is validated before it is returned; validation errors
// name the environment variable that needs fixing.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	TMDB     TMDBConfig     `koanf:"tmdb"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // 0 = use NumCPU
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // DuckDB default is true
	SkipIndexes            bool   `koanf:"skip_indexes"`             // fast test setup
	SeedCatalog            bool   `koanf:"seed_catalog"`             // insert the starter films at startup

	// CheckpointInterval flushes the DuckDB WAL periodically; 0 disables.
	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
	StaticDir   string        `koanf:"static_dir"`  // optional built web client
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// APIConfig holds pagination and per-user defaults.
type APIConfig struct {
	PageSize        int    `koanf:"page_size"`
	MaxPageSize     int    `koanf:"max_page_size"`
	HomeListSize    int    `koanf:"home_list_size"`
	DefaultTheme    string `koanf:"default_theme"`
	DefaultLanguage string `koanf:"default_language"`
}

// SecurityConfig holds authentication, session and request-shaping settings.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	SessionStore      string        `koanf:"session_store"` // memory or badger
	SessionStorePath  string        `koanf:"session_store_path"`
	SessionCleanup    time.Duration `koanf:"session_cleanup"`
	AdminEmail        string        `koanf:"admin_email"`
	AdminPassword     string        `koanf:"admin_password"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	CookieSecure      bool          `koanf:"cookie_secure"`
	Casbin            CasbinConfig  `koanf:"casbin"`
}

// CasbinConfig holds authorization settings. Empty paths select the
// embedded model and policy.
type CasbinConfig struct {
	ModelPath    string        `koanf:"model_path"`
	PolicyPath   string        `koanf:"policy_path"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// TMDBConfig holds The Movie Database client settings. An empty APIKey
// disables import; the admin endpoints then answer 503.
type TMDBConfig struct {
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	ImageBaseURL      string        `koanf:"image_base_url"`
	Language          string        `koanf:"language"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
}

// Enabled reports whether an API key is configured.
func (t TMDBConfig) Enabled() bool {
	return strings.TrimSpace(t.APIKey) != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all layers and validates it.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
