// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package models

import "time"

// SortField identifies the attribute a result set is ordered by.
type SortField string

const (
	// SortRelevance orders by computed relevance score.
	SortRelevance SortField = "relevance"
	// SortTitle orders alphabetically by programme title.
	SortTitle SortField = "title"
	// SortStartTime orders chronologically by start time.
	SortStartTime SortField = "start_time"
	// SortChannel orders alphabetically by channel name.
	SortChannel SortField = "channel"
	// SortDuration orders numerically by duration in minutes.
	SortDuration SortField = "duration"
	// SortGenre orders alphabetically by genre.
	SortGenre SortField = "genre"
)

// Label returns the human-readable name for the sort field.
func (f SortField) Label() string {
	switch f {
	case SortRelevance:
		return "Relevance"
	case SortTitle:
		return "Title"
	case SortStartTime:
		return "Start Time"
	case SortChannel:
		return "Channel"
	case SortDuration:
		return "Duration"
	case SortGenre:
		return "Genre"
	default:
		return string(f)
	}
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "asc"
	// SortDesc sorts descending.
	SortDesc SortOrder = "desc"
)

// DateRange restricts qualifying programmes by start time, inclusive at
// both ends. Invariant: Start <= End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DurationRange bounds programme duration in minutes. A zero bound means
// unbounded on that side; both bounds are inclusive.
type DurationRange struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// SearchFilters is the full query specification accepted by the search
// engine. All list fields default to empty, which means "no constraint".
type SearchFilters struct {
	// Query is the free-text query string. It may carry quoted phrases
	// and inline field filters (genre:drama, channel:bbc, rating:pg).
	Query string `json:"query"`

	// Genres, Channels and Ratings carry selected facet values. A
	// programme qualifies when at least one entry in each non-empty list
	// matches its respective field.
	Genres   []string `json:"genres,omitempty"`
	Channels []string `json:"channels,omitempty"`
	Ratings  []string `json:"ratings,omitempty"`

	// TimeSlots holds selected canonical slot IDs.
	TimeSlots []string `json:"time_slots,omitempty"`

	// DateRange restricts programme start times, inclusive.
	DateRange *DateRange `json:"date_range,omitempty"`

	// Duration bounds programme length in minutes.
	Duration *DurationRange `json:"duration,omitempty"`

	// StartTime and EndTime are explicit absolute bounds on the
	// programme's start time, applied in addition to DateRange.
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	// SortBy selects the ordering attribute. Empty means relevance.
	SortBy SortField `json:"sort_by,omitempty"`

	// SortOrder selects the direction. Empty means the field's natural
	// direction (descending for relevance, ascending otherwise).
	SortOrder SortOrder `json:"sort_order,omitempty"`
}

// HasTextQuery reports whether the filters carry any free text.
func (f *SearchFilters) HasTextQuery() bool {
	for _, r := range f.Query {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
