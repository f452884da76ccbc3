// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package main is the entry point for the Filmlerim server.

Filmlerim is a movie catalog with social features: users browse and filter
films, keep favorites and a watchlist, comment and like comments, and see
a statistics profile. Administrators curate the catalog by hand or import
films from The Movie Database (TMDB).

# Startup

The server initializes components in this order:

 1. Configuration (Koanf v2: defaults, optional config.yaml, .env, environment)
 2. Logging (zerolog)
 3. DuckDB with migrations, plus the starter catalog when SEED_CATALOG=true
 4. Session store (memory or BadgerDB) and the auth service
 5. Admin bootstrap from ADMIN_EMAIL / ADMIN_PASSWORD
 6. Casbin enforcer, TMDB client, websocket hub
 7. Chi router and http.Server
 8. Suture supervisor tree

# Supervision

	filmlerim
	├── data-layer
	│   ├── session-cleanup
	│   └── duckdb-checkpoint (CHECKPOINT_INTERVAL > 0)
	├── messaging-layer
	│   └── websocket-hub
	└── api-layer
	    └── http-server

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
to 10 seconds, the checkpoint service flushes the WAL once more, and the
database and session store are closed.

# Example

	export JWT_SECRET=$(openssl rand -base64 32)
	export ADMIN_EMAIL=admin@example.com
	export ADMIN_PASSWORD=change-me-please
	export TMDB_API_KEY=your-tmdb-key
	export SEED_CATALOG=true
	./filmlerim
*/
package main
