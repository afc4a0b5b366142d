// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package search

import (
	"sort"
	"strings"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

// maxSuggestions caps the completion list handed to the UI.
const maxSuggestions = 10

// suggestion match priorities, lower ranks first.
const (
	priorityExact = iota
	priorityPrefix
	prioritySubstring
)

// buildSuggestions derives query completions from the unique titles,
// genres and channel names in the candidate set. Exact matches rank
// first, then prefix matches, then arbitrary substring matches; within a
// priority band suggestions are ordered alphabetically. Each suggestion
// carries the matched span offsets; rendering is left to the UI.
func buildSuggestions(query string, programmes []models.Programme) []models.Suggestion {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	type ranked struct {
		suggestion models.Suggestion
		priority   int
	}

	var candidates []ranked
	seen := make(map[string]struct{})
	consider := func(value string) {
		if value == "" {
			return
		}
		if _, dup := seen[value]; dup {
			return
		}
		seen[value] = struct{}{}

		lower := strings.ToLower(value)
		idx := strings.Index(lower, query)
		if idx < 0 {
			return
		}

		priority := prioritySubstring
		switch {
		case lower == query:
			priority = priorityExact
		case idx == 0:
			priority = priorityPrefix
		}

		candidates = append(candidates, ranked{
			suggestion: models.Suggestion{
				Text:  value,
				Spans: []models.HighlightSpan{{Start: idx, End: idx + len(query)}},
			},
			priority: priority,
		})
	}

	for i := range programmes {
		consider(programmes[i].Title)
	}
	for i := range programmes {
		consider(programmes[i].Genre)
	}
	for i := range programmes {
		consider(programmes[i].ChannelName)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority < candidates[j].priority
		}
		return candidates[i].suggestion.Text < candidates[j].suggestion.Text
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]models.Suggestion, len(candidates))
	for i, c := range candidates {
		out[i] = c.suggestion
	}
	return out
}
