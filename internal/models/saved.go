// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package models

import "time"

// AlertFrequency controls how often a saved-search alert fires.
// Alert delivery itself is outside the engine; the frequency is stored
// with the saved search for the notification layer to consume.
type AlertFrequency string

const (
	// AlertImmediate fires as soon as a matching programme appears.
	AlertImmediate AlertFrequency = "immediate"
	// AlertDaily batches matches into a daily digest.
	AlertDaily AlertFrequency = "daily"
	// AlertWeekly batches matches into a weekly digest.
	AlertWeekly AlertFrequency = "weekly"
)

// Valid reports whether the frequency is one of the recognized values.
func (f AlertFrequency) Valid() bool {
	switch f {
	case AlertImmediate, AlertDaily, AlertWeekly:
		return true
	default:
		return false
	}
}

// SavedSearch is a user-owned named filter snapshot. Created on explicit
// save, updated on edit or re-execution, deleted on explicit user action.
// Its lifetime is independent of any session.
type SavedSearch struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Name           string         `json:"name"`
	Filters        SearchFilters  `json:"filters"`
	AlertEnabled   bool           `json:"alert_enabled"`
	AlertFrequency AlertFrequency `json:"alert_frequency"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	LastExecutedAt *time.Time     `json:"last_executed_at,omitempty"`
}

// HistoryFacets is the reduced filter snapshot recorded with a history
// entry: the selected facet values only, not the full filter object.
type HistoryFacets struct {
	Genres    []string `json:"genres,omitempty"`
	Channels  []string `json:"channels,omitempty"`
	Ratings   []string `json:"ratings,omitempty"`
	TimeSlots []string `json:"time_slots,omitempty"`
}

// SearchHistoryEntry is an append-only record of an executed text query.
// Entries are never updated, only appended or bulk-cleared; each user's
// log is capped to the most recent 50 entries.
type SearchHistoryEntry struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Query       string        `json:"query"`
	Facets      HistoryFacets `json:"facets"`
	ResultCount int           `json:"result_count"`
	ExecutedAt  time.Time     `json:"executed_at"`
}
