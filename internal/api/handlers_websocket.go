// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"net/http"

	ws "github.com/tomtom215/filmlerim/internal/websocket"
)

// WebSocket upgrades the connection and subscribes it to catalog and
// comment events.
//
// @Summary Live updates
// @Description Upgrades to a websocket that receives film_*, comment_* and like_toggled events
// @Tags realtime
// @Success 101 "Switching protocols"
// @Failure 401 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse "Hub not running"
// @Router /api/v1/ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Live updates are not available", nil)
		return
	}
	ws.ServeWS(h.wsHub, h.upgrader, w, r, currentSession(r).UserID)
}
