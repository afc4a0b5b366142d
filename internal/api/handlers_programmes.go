// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"fmt"
	"net/http"
	"time"
)

// SnapshotResponse reports the outcome of a schedule snapshot upload.
type SnapshotResponse struct {
	Count int `json:"count"`
}

// ReplaceProgrammes installs a new schedule snapshot, replacing the
// previous one atomically. The guide provider pushes the full listing
// window here whenever it refreshes.
func (h *Handler) ReplaceProgrammes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ProgrammesRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	seen := make(map[string]struct{}, len(req.Programmes))
	for i := range req.Programmes {
		p := &req.Programmes[i]
		if p.ID == "" || p.Title == "" || p.ChannelName == "" {
			respondError(w, http.StatusBadRequest, errCodeValidation,
				fmt.Sprintf("programme %d: id, title and channel_name are required", i), nil)
			return
		}
		if !p.EndTime.After(p.StartTime) {
			respondError(w, http.StatusBadRequest, errCodeValidation,
				fmt.Sprintf("programme %q: end_time must follow start_time", p.ID), nil)
			return
		}
		if _, dup := seen[p.ID]; dup {
			respondError(w, http.StatusBadRequest, errCodeValidation,
				fmt.Sprintf("programme %q: duplicate id", p.ID), nil)
			return
		}
		seen[p.ID] = struct{}{}

		if p.Duration <= 0 {
			p.Duration = int(p.EndTime.Sub(p.StartTime) / time.Minute)
		}
	}

	h.engine.SetProgrammes(req.Programmes)

	respondSuccess(w, http.StatusOK, SnapshotResponse{Count: len(req.Programmes)}, start)
}
