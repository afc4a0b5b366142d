// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

// Search executes a programme search. The body is a SearchRequest; the
// response Data is a models.SearchResult. The optional X-User-ID header
// scopes history recording; anonymous searches are not recorded.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SearchRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if msg, ok := req.checkRanges(); !ok {
		respondError(w, http.StatusBadRequest, errCodeValidation, msg, nil)
		return
	}

	userID := r.Header.Get(userIDHeader)
	result, err := h.engine.Search(r.Context(), userID, req.Filters())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			respondError(w, http.StatusServiceUnavailable, errCodeSearchError, "Search was interrupted", err)
			return
		}
		respondError(w, http.StatusInternalServerError, errCodeSearchError, "Search failed", err)
		return
	}

	respondSuccess(w, http.StatusOK, result, start)
}

// TimeSlots returns the canonical time-slot catalogue for the facet UI.
func (h *Handler) TimeSlots(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, models.CanonicalTimeSlots, start)
}
