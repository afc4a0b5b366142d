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

// buildFacets computes the refinement facets from the final filtered
// result set. Counts reflect co-occurrence within the current results,
// not the full catalogue, so facets narrow as the user filters.
func buildFacets(results []models.ScoredProgramme, filters *models.SearchFilters) models.SearchFacets {
	return models.SearchFacets{
		Genres:    valueFacet(results, filters.Genres, func(p *models.Programme) string { return p.Genre }),
		Channels:  valueFacet(results, filters.Channels, func(p *models.Programme) string { return p.ChannelName }),
		Ratings:   valueFacet(results, filters.Ratings, func(p *models.Programme) string { return p.Rating }),
		TimeSlots: timeSlotFacet(results, filters.TimeSlots),
	}
}

// valueFacet buckets results by a single string field, alphabetically
// ordered for stable output. Programmes with an empty field value are
// not listed.
func valueFacet(results []models.ScoredProgramme, selected []string, field func(*models.Programme) string) []models.FacetValue {
	counts := make(map[string]int)
	for i := range results {
		if v := field(&results[i].Programme); v != "" {
			counts[v]++
		}
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	facet := make([]models.FacetValue, 0, len(values))
	for _, v := range values {
		facet = append(facet, models.FacetValue{
			Value:    v,
			Label:    v,
			Count:    counts[v],
			Selected: valueSelected(v, selected),
		})
	}
	return facet
}

// valueSelected mirrors the filter semantics: a facet value is active
// when any selected filter value is a case-insensitive substring of it.
func valueSelected(value string, selected []string) bool {
	lower := strings.ToLower(value)
	for _, s := range selected {
		if s != "" && strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// timeSlotFacet buckets result start hours into the canonical seven
// slots. All slots are always listed so the UI can render a stable set
// of checkboxes; the canonical slots partition the 24-hour clock, so
// unconstrained counts sum to the result total.
func timeSlotFacet(results []models.ScoredProgramme, selected []string) []models.FacetValue {
	facet := make([]models.FacetValue, 0, len(models.CanonicalTimeSlots))
	for _, slot := range models.CanonicalTimeSlots {
		count := 0
		for i := range results {
			if slot.Contains(results[i].StartTime.Hour()) {
				count++
			}
		}

		isSelected := false
		for _, id := range selected {
			if id == slot.ID {
				isSelected = true
				break
			}
		}

		facet = append(facet, models.FacetValue{
			Value:    slot.ID,
			Label:    slot.Label,
			Count:    count,
			Selected: isSelected,
		})
	}
	return facet
}
