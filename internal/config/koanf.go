// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/filmlerim/config.yaml",
	"/etc/filmlerim/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPath is the optional dotenv file read before the environment layer.
var DotEnvPath = ".env"

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:                   "/data/filmlerim.duckdb",
			MaxMemory:              "1GB",
			Threads:                0,
			PreserveInsertionOrder: true,
			SeedCatalog:            false,
			CheckpointInterval:     time.Hour,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			PageSize:        12,
			MaxPageSize:     60,
			HomeListSize:    8,
			DefaultTheme:    "light",
			DefaultLanguage: "tr",
		},
		Security: SecurityConfig{
			SessionTimeout:   24 * time.Hour,
			SessionStore:     "badger",
			SessionStorePath: "/data/sessions",
			SessionCleanup:   15 * time.Minute,
			BcryptCost:       12,
			RateLimitReqs:    100,
			RateLimitWindow:  time.Minute,
			CORSOrigins:      []string{"*"},
			CookieSecure:     false,
			Casbin: CasbinConfig{
				CacheEnabled: true,
				CacheTTL:     5 * time.Minute,
			},
		},
		TMDB: TMDBConfig{
			BaseURL:           "https://api.themoviedb.org/3",
			ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
			Language:          "tr-TR",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf layers defaults, the YAML file, .env and the environment,
// then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := loadDotEnv(DotEnvPath); err != nil {
		return nil, err
	}

	// HTTP_PORT -> server.port, TMDB_API_KEY -> tmdb.api_key, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"duckdb_path":         "database.path",
	"duckdb_max_memory":   "database.max_memory",
	"duckdb_threads":      "database.threads",
	"duckdb_skip_indexes": "database.skip_indexes",
	"seed_catalog":        "database.seed_catalog",
	"checkpoint_interval": "database.checkpoint_interval",

	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",
	"static_dir":   "server.static_dir",

	"api_page_size":      "api.page_size",
	"api_max_page_size":  "api.max_page_size",
	"api_home_list_size": "api.home_list_size",
	"default_theme":      "api.default_theme",
	"default_language":   "api.default_language",

	"jwt_secret":          "security.jwt_secret",
	"session_timeout":     "security.session_timeout",
	"session_store":       "security.session_store",
	"session_store_path":  "security.session_store_path",
	"session_cleanup":     "security.session_cleanup",
	"admin_email":         "security.admin_email",
	"admin_password":      "security.admin_password",
	"bcrypt_cost":         "security.bcrypt_cost",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"cookie_secure":       "security.cookie_secure",

	"casbin_model_path":    "security.casbin.model_path",
	"casbin_policy_path":   "security.casbin.policy_path",
	"casbin_cache_enabled": "security.casbin.cache_enabled",
	"casbin_cache_ttl":     "security.casbin.cache_ttl",

	"tmdb_api_key":             "tmdb.api_key",
	"tmdb_base_url":            "tmdb.base_url",
	"tmdb_image_base_url":      "tmdb.image_base_url",
	"tmdb_language":            "tmdb.language",
	"tmdb_timeout":             "tmdb.timeout",
	"tmdb_requests_per_second": "tmdb.requests_per_second",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" to skip it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// normalize canonicalises case-insensitive values after unmarshalling.
func (c *Config) normalize() {
	c.Security.SessionStore = strings.ToLower(strings.TrimSpace(c.Security.SessionStore))
	c.Security.AdminEmail = strings.ToLower(strings.TrimSpace(c.Security.AdminEmail))
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)
	c.TMDB.BaseURL = strings.TrimRight(c.TMDB.BaseURL, "/")
	c.TMDB.ImageBaseURL = strings.TrimRight(c.TMDB.ImageBaseURL, "/")
}
