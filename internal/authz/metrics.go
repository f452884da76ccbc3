// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package authz

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthzDecisionsTotal counts decisions by role, object, action and outcome.
	AuthzDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filmlerim_authz_decisions_total",
			Help: "Total number of authorization decisions",
		},
		[]string{"role", "object", "action", "decision"},
	)

	// AuthzDecisionDuration tracks enforcement latency.
	AuthzDecisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filmlerim_authz_decision_duration_seconds",
			Help:    "Duration of authorization decisions in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"cache_hit"},
	)

	AuthzCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmlerim_authz_cache_hits_total",
			Help: "Total number of authorization cache hits",
		},
	)

	AuthzCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmlerim_authz_cache_misses_total",
			Help: "Total number of authorization cache misses",
		},
	)

	// AuthzPolicyRulesTotal is the number of p rules loaded.
	AuthzPolicyRulesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filmlerim_authz_policy_rules",
			Help: "Current number of policy rules loaded",
		},
	)

	// AuthzErrorsTotal counts enforcer failures, not denials.
	AuthzErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filmlerim_authz_errors_total",
			Help: "Total number of authorization errors",
		},
	)
)

// RecordDecision records one authorization decision.
func RecordDecision(role, object, action string, allowed, cacheHit bool, duration time.Duration) {
	outcome := "denied"
	if allowed {
		outcome = "allowed"
	}
	AuthzDecisionsTotal.WithLabelValues(role, object, action, outcome).Inc()

	hit := "false"
	if cacheHit {
		hit = "true"
		AuthzCacheHitsTotal.Inc()
	} else {
		AuthzCacheMissesTotal.Inc()
	}
	AuthzDecisionDuration.WithLabelValues(hit).Observe(duration.Seconds())
}
