// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package search

import (
	"regexp"
	"strings"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

var (
	phrasePattern = regexp.MustCompile(`"([^"]*)"`)
	fieldPattern  = regexp.MustCompile(`([a-zA-Z]+):([^\s"]+)`)
)

// ParsedQuery is the decomposition of a raw query string: free-text
// terms plus the inline field filters it carried.
type ParsedQuery struct {
	// Terms holds quoted phrases and residual words, phrases first.
	Terms []string

	// Genres, Channels and Ratings hold inline filter values. Duplicates
	// are allowed; callers dedupe if they need to.
	Genres   []string
	Channels []string
	Ratings  []string
}

// ParseQuery decomposes a raw query into terms and inline filters.
//
// Extraction order is fixed: double-quoted phrases first (one literal
// term each, quotes stripped), then field:value tokens (genre, channel
// and rating recognized, unknown field names silently dropped), then the
// residual words split on whitespace. The order governs first-occurrence
// de-duplication for callers that dedupe.
func ParseQuery(raw string) ParsedQuery {
	var parsed ParsedQuery
	working := raw

	for _, m := range phrasePattern.FindAllStringSubmatch(working, -1) {
		phrase := strings.TrimSpace(m[1])
		if phrase != "" {
			parsed.Terms = append(parsed.Terms, phrase)
		}
	}
	working = phrasePattern.ReplaceAllString(working, " ")

	for _, m := range fieldPattern.FindAllStringSubmatch(working, -1) {
		value := m[2]
		switch strings.ToLower(m[1]) {
		case "genre":
			parsed.Genres = append(parsed.Genres, value)
		case "channel":
			parsed.Channels = append(parsed.Channels, value)
		case "rating":
			parsed.Ratings = append(parsed.Ratings, value)
		default:
			// Unrecognized field names are dropped, not an error.
		}
	}
	working = fieldPattern.ReplaceAllString(working, " ")

	for _, word := range strings.Fields(working) {
		parsed.Terms = append(parsed.Terms, word)
	}

	return parsed
}

// MergeFilters unions the parser's inline filters into the
// caller-supplied filter lists, field by field. Duplicates are
// tolerated; list order is caller values first, parsed values after.
// All other fields pass through unchanged.
func MergeFilters(filters models.SearchFilters, parsed ParsedQuery) models.SearchFilters {
	merged := filters
	merged.Genres = appendValues(filters.Genres, parsed.Genres)
	merged.Channels = appendValues(filters.Channels, parsed.Channels)
	merged.Ratings = appendValues(filters.Ratings, parsed.Ratings)
	return merged
}

// appendValues unions two value lists into a fresh slice so the merge
// never aliases the caller's backing arrays.
func appendValues(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
