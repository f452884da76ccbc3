// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package metrics defines the Prometheus collectors exported at /metrics.

All collectors are registered on the default registry through promauto, so
importing the package is enough to expose them.

# Available Metrics

Database:
  - filmlerim_db_query_duration_seconds (operation, table)
  - filmlerim_db_query_errors_total (operation, table, error_type)

HTTP API:
  - filmlerim_api_requests_total (method, endpoint, status_code)
  - filmlerim_api_request_duration_seconds (method, endpoint)
  - filmlerim_api_active_requests
  - filmlerim_api_rate_limit_hits_total (endpoint)

WebSocket:
  - filmlerim_websocket_connections
  - filmlerim_websocket_messages_sent_total (message_type)
  - filmlerim_websocket_errors_total (error_type)

TMDB and circuit breaker:
  - filmlerim_tmdb_request_duration_seconds (endpoint, status_code)
  - filmlerim_tmdb_imports_total (result)
  - filmlerim_circuit_breaker_state (name): 0=closed, 1=half-open, 2=open
  - filmlerim_circuit_breaker_requests_total (name, result)
  - filmlerim_circuit_breaker_state_transitions_total (name, from_state, to_state)

Domain:
  - filmlerim_comments_total (action)
  - filmlerim_like_toggles_total (result)
  - filmlerim_active_sessions

The endpoint label is the chi route pattern (e.g. /api/v1/films/{id}),
never the raw path, to keep cardinality bounded.

# Example Alert

  - alert: TMDBCircuitOpen
    expr: filmlerim_circuit_breaker_state{name="tmdb-api"} == 2
    for: 5m
*/
package metrics
