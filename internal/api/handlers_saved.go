// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/logging"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/store"
)

// respondStoreError maps store sentinels to HTTP statuses.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, errCodeNotFound, "Saved search not found", nil)
	case errors.Is(err, store.ErrOwnershipMismatch):
		respondError(w, http.StatusForbidden, errCodeForbidden, "Saved search belongs to another user", nil)
	default:
		respondError(w, http.StatusInternalServerError, errCodeStoreError, "Store operation failed", err)
	}
}

// SavedSearchList returns the user's saved searches, newest first.
func (h *Handler) SavedSearchList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	searches, err := h.saved.ListByUser(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if searches == nil {
		searches = []*models.SavedSearch{}
	}

	respondSuccess(w, http.StatusOK, searches, start)
}

// SavedSearchCreate stores a new named filter snapshot for the user.
func (h *Handler) SavedSearchCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var req SavedSearchCreateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if msg, valid := req.Filters.checkRanges(); !valid {
		respondError(w, http.StatusBadRequest, errCodeValidation, msg, nil)
		return
	}

	saved := &models.SavedSearch{
		ID:      uuid.New().String(),
		UserID:  userID,
		Name:    req.Name,
		Filters: req.Filters.Filters(),
	}
	if err := h.saved.Create(r.Context(), saved); err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, saved, start)
}

// SavedSearchGet returns a single saved search owned by the user.
func (h *Handler) SavedSearchGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathSearchID(w, r)
	if !ok {
		return
	}

	saved, err := h.saved.GetOwned(r.Context(), userID, id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, saved, start)
}

// SavedSearchUpdate renames a saved search and/or replaces its filters.
func (h *Handler) SavedSearchUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathSearchID(w, r)
	if !ok {
		return
	}

	var req SavedSearchUpdateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if msg, valid := req.Filters.checkRanges(); !valid {
		respondError(w, http.StatusBadRequest, errCodeValidation, msg, nil)
		return
	}

	saved := &models.SavedSearch{
		ID:      id,
		UserID:  userID,
		Name:    req.Name,
		Filters: req.Filters.Filters(),
	}
	if err := h.saved.Update(r.Context(), saved); err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, saved, start)
}

// SavedSearchDelete removes a saved search. Deleting a search that no
// longer exists returns success.
func (h *Handler) SavedSearchDelete(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathSearchID(w, r)
	if !ok {
		return
	}

	if err := h.saved.Delete(r.Context(), userID, id); err != nil {
		respondStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SavedSearchAlert toggles the alert flag on a saved search.
func (h *Handler) SavedSearchAlert(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathSearchID(w, r)
	if !ok {
		return
	}

	var req AlertRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if req.Enabled && req.Frequency == "" {
		respondError(w, http.StatusBadRequest, errCodeValidation, "frequency is required when enabling alerts", nil)
		return
	}

	saved, err := h.saved.SetAlert(r.Context(), userID, id, req.Enabled, models.AlertFrequency(req.Frequency))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, saved, start)
}

// SavedSearchExecute runs a saved search through the engine and stamps
// its last-executed time.
func (h *Handler) SavedSearchExecute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireStore(w) {
		return
	}
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathSearchID(w, r)
	if !ok {
		return
	}

	saved, err := h.saved.GetOwned(r.Context(), userID, id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	result, err := h.engine.Search(r.Context(), userID, saved.Filters)
	if err != nil {
		respondError(w, http.StatusInternalServerError, errCodeSearchError, "Search failed", err)
		return
	}

	// The search itself succeeded; a failed timestamp update is logged
	// but does not fail the request.
	if err := h.saved.MarkExecuted(r.Context(), userID, id, time.Now()); err != nil {
		logging.Warn().Err(err).Str("search_id", id).Msg("Failed to stamp saved search execution")
	}

	respondSuccess(w, http.StatusOK, result, start)
}
