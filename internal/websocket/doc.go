// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

/*
Package websocket pushes catalog and social change events to connected
browsers so open screens can refresh without polling.

The Hub owns the client set and runs under the supervisor via
RunWithContext. Each Client has a read pump (answers "ping" frames with
"pong") and a write pump (delivers hub messages and keepalive pings).

Frames are JSON:

	{"type": "comment_created", "data": {...comment...}}

Message types:

  - film_created, film_updated: data is the film
  - film_deleted: data is {"id": <film id>}
  - comment_created, comment_updated: data is the comment
  - comment_deleted: data is {"id": <comment id>, "film_id": <film id>}
  - like_toggled: data is the like state {comment_id, liked, like_count};
    liked is relative to the user who toggled

Broadcasting never blocks the caller. When the hub queue is full the event
is dropped; when a client's buffer is full the client is disconnected.

Timing:
  - writeWait 10s per frame
  - pongWait 60s, pings every 54s
  - inbound frames limited to 4 KB
*/
package websocket
