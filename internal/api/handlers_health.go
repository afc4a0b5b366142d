// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"net/http"
	"time"
)

// HealthResponse is the /healthz payload.
type HealthResponse struct {
	Status         string `json:"status"`
	ProgrammeCount int    `json:"programme_count"`
	StoreAvailable bool   `json:"store_available"`
}

// Health reports liveness plus a coarse view of the loaded schedule.
// An empty programme snapshot is still healthy; the provider may not
// have pushed a listing yet.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, http.StatusOK, HealthResponse{
		Status:         "ok",
		ProgrammeCount: len(h.engine.Matcher().Programmes()),
		StoreAvailable: h.saved != nil && h.history != nil,
	}, start)
}
