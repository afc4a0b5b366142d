// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package models

// MatchAlgorithm identifies which matching strategy produced a per-field
// fuzzy score. The set is closed so every branch is handled exhaustively.
type MatchAlgorithm int

const (
	// MatchExact is a case-insensitive full-string equality match.
	MatchExact MatchAlgorithm = iota
	// MatchSubstring is a containment match scored by length ratio.
	MatchSubstring
	// MatchJaroWinkler is a prefix-boosted Jaro similarity match.
	MatchJaroWinkler
	// MatchLevenshtein is an edit-distance similarity-ratio match.
	MatchLevenshtein
	// MatchSoundex is a phonetic code equality match.
	MatchSoundex
	// MatchWordLevel is a per-word best-similarity match.
	MatchWordLevel
)

// String returns the wire name of the algorithm.
func (a MatchAlgorithm) String() string {
	switch a {
	case MatchExact:
		return "exact"
	case MatchSubstring:
		return "substring"
	case MatchJaroWinkler:
		return "jaro-winkler"
	case MatchLevenshtein:
		return "levenshtein"
	case MatchSoundex:
		return "soundex"
	case MatchWordLevel:
		return "word-based"
	default:
		return "unknown"
	}
}

// FieldMatch explains how a single programme field matched a fuzzy query.
type FieldMatch struct {
	// Field is the programme field name (title, description, genre, channel).
	Field string `json:"field"`

	// Value is the field content that matched.
	Value string `json:"value"`

	// Score is the per-field similarity in [0,1].
	Score float64 `json:"score"`

	// Algorithm identifies the strategy that produced Score.
	Algorithm MatchAlgorithm `json:"algorithm"`
}

// FuzzyMatch is the transient output of a fuzzy search: a candidate
// programme, its aggregate score and the per-field explanations.
// Never persisted.
type FuzzyMatch struct {
	Programme Programme    `json:"programme"`
	Score     float64      `json:"score"`
	Fields    []FieldMatch `json:"fields,omitempty"`
}

// HighlightSpan is a half-open [Start, End) byte range within a
// suggestion that matched the query. Rendering (wrapping the span in
// emphasis markup) is the UI layer's concern.
type HighlightSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Suggestion is a query completion candidate with its matched spans.
type Suggestion struct {
	Text  string          `json:"text"`
	Spans []HighlightSpan `json:"spans,omitempty"`
}

// FacetValue is one selectable value within a facet, with its count in
// the current result set and whether it is currently active.
type FacetValue struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// SearchFacets carries per-facet value lists computed from the filtered
// result set, so counts narrow as the user refines.
type SearchFacets struct {
	Genres    []FacetValue `json:"genres"`
	Channels  []FacetValue `json:"channels"`
	Ratings   []FacetValue `json:"ratings"`
	TimeSlots []FacetValue `json:"time_slots"`
}

// SearchResult is the engine's response to a single search.
type SearchResult struct {
	// Programmes is the ranked, filtered result list.
	Programmes []ScoredProgramme `json:"programmes"`

	// TotalResults is len(Programmes).
	TotalResults int `json:"total_results"`

	// SearchTimeMS is the elapsed wall-clock search time in milliseconds.
	SearchTimeMS int64 `json:"search_time_ms"`

	// Filters is the effective filter set after merging inline query
	// filters into the caller-supplied lists.
	Filters SearchFilters `json:"filters"`

	// Suggestions are query completion candidates for the UI.
	Suggestions []Suggestion `json:"suggestions"`

	// Facets describes the refinement options within this result set.
	Facets SearchFacets `json:"facets"`
}
