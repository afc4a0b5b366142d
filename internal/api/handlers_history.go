// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/store"
)

// HistoryClearResponse reports how many history entries were removed.
type HistoryClearResponse struct {
	Removed int `json:"removed"`
}

// HistoryList returns the user's recent search history, newest first.
// The optional limit query parameter caps the page size; it defaults to
// the full retained window.
func (h *Handler) HistoryList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	limit := store.HistoryCap
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > store.HistoryCap {
			respondError(w, http.StatusBadRequest, errCodeValidation,
				"limit must be an integer between 1 and "+strconv.Itoa(store.HistoryCap), nil)
			return
		}
		limit = parsed
	}

	entries, err := h.history.ListByUser(r.Context(), userID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeStoreError, "Failed to read history", err)
		return
	}
	if entries == nil {
		entries = []models.SearchHistoryEntry{}
	}

	respondSuccess(w, http.StatusOK, entries, start)
}

// HistoryClear removes all of the user's history entries.
func (h *Handler) HistoryClear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	removed, err := h.history.Clear(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeStoreError, "Failed to clear history", err)
		return
	}

	respondSuccess(w, http.StatusOK, HistoryClearResponse{Removed: removed}, start)
}
