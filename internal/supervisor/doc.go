// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package supervisor runs Filmlerim's long-lived services under suture v4.

The tree has three layers so a failure in one does not restart the others:

	filmlerim
	├── data-layer
	│   ├── session-cleanup
	│   └── duckdb-checkpoint
	├── messaging-layer
	│   └── websocket-hub
	└── api-layer
	    └── http-server

Supervisor events are logged through sutureslog. Restarts back off after
FailureThreshold failures within the decay window.

Usage:

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
