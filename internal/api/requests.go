// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"time"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

// SearchRequest is the body of POST /api/v1/search. It mirrors
// models.SearchFilters with validation tags on the client-supplied
// fields.
type SearchRequest struct {
	Query     string   `json:"query" validate:"max=200"`
	Genres    []string `json:"genres" validate:"max=20,dive,min=1,max=100"`
	Channels  []string `json:"channels" validate:"max=20,dive,min=1,max=100"`
	Ratings   []string `json:"ratings" validate:"max=20,dive,min=1,max=20"`
	TimeSlots []string `json:"time_slots" validate:"max=7,dive,timeslot"`

	DateRange *models.DateRange     `json:"date_range"`
	Duration  *models.DurationRange `json:"duration"`
	StartTime *time.Time            `json:"start_time"`
	EndTime   *time.Time            `json:"end_time"`

	SortBy    string `json:"sort_by" validate:"omitempty,sortfield"`
	SortOrder string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Filters converts the request into engine filters.
func (req *SearchRequest) Filters() models.SearchFilters {
	return models.SearchFilters{
		Query:     req.Query,
		Genres:    req.Genres,
		Channels:  req.Channels,
		Ratings:   req.Ratings,
		TimeSlots: req.TimeSlots,
		DateRange: req.DateRange,
		Duration:  req.Duration,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		SortBy:    models.SortField(req.SortBy),
		SortOrder: models.SortOrder(req.SortOrder),
	}
}

// checkRanges validates the cross-field constraints the tag syntax
// cannot express.
func (req *SearchRequest) checkRanges() (string, bool) {
	if req.DateRange != nil && req.DateRange.End.Before(req.DateRange.Start) {
		return "date_range end must not precede start", false
	}
	if req.Duration != nil {
		if req.Duration.Min < 0 || req.Duration.Max < 0 {
			return "duration bounds must not be negative", false
		}
		if req.Duration.Max > 0 && req.Duration.Min > req.Duration.Max {
			return "duration min must not exceed max", false
		}
	}
	if req.StartTime != nil && req.EndTime != nil && req.EndTime.Before(*req.StartTime) {
		return "end_time must not precede start_time", false
	}
	return "", true
}

// ProgrammesRequest is the body of PUT /api/v1/programmes: the full
// schedule snapshot that replaces the current one.
type ProgrammesRequest struct {
	Programmes []models.Programme `json:"programmes" validate:"required,max=500000"`
}

// SavedSearchCreateRequest is the body of POST .../searches.
type SavedSearchCreateRequest struct {
	Name    string        `json:"name" validate:"required,min=1,max=100"`
	Filters SearchRequest `json:"filters"`
}

// SavedSearchUpdateRequest is the body of PUT .../searches/{id}.
type SavedSearchUpdateRequest struct {
	Name    string        `json:"name" validate:"required,min=1,max=100"`
	Filters SearchRequest `json:"filters"`
}

// AlertRequest is the body of POST .../searches/{id}/alert. Frequency
// is required when enabling and ignored when disabling.
type AlertRequest struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency" validate:"omitempty,alertfreq"`
}
