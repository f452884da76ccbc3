// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package authz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/logging"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Objects guarded by the policy.
const (
	ObjectCatalog = "catalog"
	ObjectSocial  = "social"
	ObjectProfile = "profile"
	ObjectFilms   = "films"
	ObjectTMDB    = "tmdb"
	ObjectSeed    = "seed"
)

// Actions.
const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// EnforcerConfig holds configuration for the Casbin enforcer.
type EnforcerConfig struct {
	// ModelPath overrides the embedded model when the file exists.
	ModelPath string

	// PolicyPath overrides the embedded policy when the file exists.
	PolicyPath string

	CacheEnabled bool
	CacheTTL     time.Duration
}

// DefaultEnforcerConfig returns the embedded model and policy with caching.
func DefaultEnforcerConfig() *EnforcerConfig {
	return &EnforcerConfig{
		CacheEnabled: true,
		CacheTTL:     5 * time.Minute,
	}
}

// EnforcerConfigFrom maps the application config.
func EnforcerConfigFrom(cfg config.CasbinConfig) *EnforcerConfig {
	return &EnforcerConfig{
		ModelPath:    cfg.ModelPath,
		PolicyPath:   cfg.PolicyPath,
		CacheEnabled: cfg.CacheEnabled,
		CacheTTL:     cfg.CacheTTL,
	}
}

// Enforcer wraps the Casbin enforcer with a decision cache.
type Enforcer struct {
	config   *EnforcerConfig
	enforcer *casbin.SyncedEnforcer
	cache    *decisionCache
}

// NewEnforcer loads the model and policy and returns a ready enforcer.
func NewEnforcer(cfg *EnforcerConfig) (*Enforcer, error) {
	if cfg == nil {
		cfg = DefaultEnforcerConfig()
	}

	var m model.Model
	var err error
	if cfg.ModelPath != "" && fileExists(cfg.ModelPath) {
		m, err = model.NewModelFromFile(cfg.ModelPath)
	} else {
		m, err = model.NewModelFromString(embeddedModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if cfg.PolicyPath != "" && fileExists(cfg.PolicyPath) {
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(cfg.PolicyPath))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadEmbeddedPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{config: cfg, enforcer: enforcer}
	if cfg.CacheEnabled {
		e.cache = newDecisionCache(cfg.CacheTTL)
	}

	//nolint:errcheck // GetPolicy only fails on a nil model
	rules, _ := enforcer.GetPolicy()
	AuthzPolicyRulesTotal.Set(float64(len(rules)))
	logging.Info().
		Int("rules", len(rules)).
		Bool("cache", cfg.CacheEnabled).
		Msg("Authorization enforcer ready")

	return e, nil
}

// loadEmbeddedPolicy parses policy CSV lines ("p, sub, obj, act" and
// "g, user, role"). Blank lines and # comments are skipped.
func loadEmbeddedPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch parts[0] {
		case "p":
			if len(parts) < 4 {
				return fmt.Errorf("malformed policy line %q", line)
			}
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
			}
		case "g":
			if len(parts) < 3 {
				return fmt.Errorf("malformed grouping line %q", line)
			}
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("unknown policy type %q", parts[0])
		}
	}
	return nil
}

// Enforce reports whether role may perform action on object.
func (e *Enforcer) Enforce(role, object, action string) (bool, error) {
	start := time.Now()

	if e.cache != nil {
		if allowed, ok := e.cache.get(role, object, action); ok {
			RecordDecision(role, object, action, allowed, true, time.Since(start))
			return allowed, nil
		}
	}

	allowed, err := e.enforcer.Enforce(role, object, action)
	if err != nil {
		AuthzErrorsTotal.Inc()
		return false, fmt.Errorf("enforcement failed: %w", err)
	}

	if e.cache != nil {
		e.cache.set(role, object, action, allowed)
	}
	RecordDecision(role, object, action, allowed, false, time.Since(start))
	return allowed, nil
}

// AddPolicy adds a rule at runtime and drops cached decisions.
func (e *Enforcer) AddPolicy(role, object, action string) (bool, error) {
	added, err := e.enforcer.AddPolicy(role, object, action)
	if err != nil {
		return false, fmt.Errorf("failed to add policy: %w", err)
	}
	if e.cache != nil {
		e.cache.clear()
	}
	return added, nil
}

// RemovePolicy removes a rule at runtime and drops cached decisions for
// the role.
func (e *Enforcer) RemovePolicy(role, object, action string) (bool, error) {
	removed, err := e.enforcer.RemovePolicy(role, object, action)
	if err != nil {
		return false, fmt.Errorf("failed to remove policy: %w", err)
	}
	if e.cache != nil {
		e.cache.invalidateSubject(role)
	}
	return removed, nil
}

// Close stops the cache sweeper.
func (e *Enforcer) Close() {
	if e.cache != nil {
		e.cache.stop()
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
