// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package models

import "time"

// Programme represents a single scheduled broadcast in the guide.
// Instances are issued by the schedule provider and are immutable; the
// search engine only reads them.
type Programme struct {
	// ID is the unique programme identifier.
	ID string `json:"id"`

	// Title is the programme title as broadcast.
	Title string `json:"title"`

	// Description is the listing synopsis.
	Description string `json:"description,omitempty"`

	// Genre is a single free-text category (Drama, News, Sport, ...).
	Genre string `json:"genre,omitempty"`

	// ChannelID identifies the broadcasting channel.
	ChannelID string `json:"channel_id"`

	// ChannelName is the channel's display name (BBC One, ITV1, ...).
	ChannelName string `json:"channel_name"`

	// StartTime is when the broadcast begins.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the broadcast ends.
	EndTime time.Time `json:"end_time"`

	// Duration is the scheduled length in minutes.
	Duration int `json:"duration"`

	// Rating is the optional content rating (U, PG, 15, ...).
	Rating string `json:"rating,omitempty"`
}

// ScoredProgramme pairs a programme with its transient relevance score.
// The score exists only for ordering within a single result set and is
// never persisted.
type ScoredProgramme struct {
	Programme

	// Relevance is the raw additive relevance signal, or the fuzzy-match
	// score in [0,1] for items recovered by fallback widening.
	Relevance float64 `json:"relevance,omitempty"`
}
