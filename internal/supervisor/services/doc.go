// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package services adapts Filmlerim's long-running components to suture.Service.

Each wrapper turns a component's own lifecycle (ListenAndServe/Shutdown, a
context-driven run loop, a periodic job) into Serve(ctx) so the supervisor
tree can restart it on failure and stop it on shutdown:

  - HTTPServerService: *http.Server with a bounded graceful drain
  - WebSocketHubService: the websocket hub's RunWithContext loop
  - SessionCleanupService: expired-session purge plus the active-sessions gauge
  - CheckpointService: periodic DuckDB checkpoints and a final one on stop

Serve returns ctx.Err() on a requested stop and a wrapped error on failure.
*/
package services
