// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/search"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/store"
)

// userIDHeader identifies the requesting user on endpoints that are not
// scoped under /users/{userID}. The guide has no account system; the
// client supplies a stable identifier of its own choosing.
const userIDHeader = "X-User-ID"

// Handler carries the dependencies shared by all HTTP handlers.
type Handler struct {
	engine  *search.Engine
	saved   *store.SavedSearchStore
	history *store.HistoryStore
}

// NewHandler creates the handler set. saved and history may be nil in
// tests that only exercise the search endpoints.
func NewHandler(engine *search.Engine, saved *store.SavedSearchStore, history *store.HistoryStore) *Handler {
	return &Handler{
		engine:  engine,
		saved:   saved,
		history: history,
	}
}

// requireStore guards the persistence endpoints when no store is wired.
func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.saved == nil || h.history == nil {
		respondError(w, http.StatusServiceUnavailable, errCodeStoreError, "Persistence is not available", nil)
		return false
	}
	return true
}

// pathUserID extracts the {userID} route parameter, writing a 400 when
// it is missing.
func pathUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, "User ID is required", nil)
		return "", false
	}
	return userID, true
}

// pathSearchID extracts the {id} route parameter for saved searches.
func pathSearchID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, "Search ID is required", nil)
		return "", false
	}
	return id, true
}
