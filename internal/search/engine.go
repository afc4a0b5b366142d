// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package search

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/metrics"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/textmatch"
)

// HistoryRecorder receives executed-search records. Implemented by the
// store layer; the interface lives here to avoid a dependency cycle.
type HistoryRecorder interface {
	AppendHistory(ctx context.Context, entry models.SearchHistoryEntry) error
}

// Config holds engine tuning knobs.
type Config struct {
	// Threshold is the fuzzy matcher's minimum score. Zero keeps the
	// matcher default (0.6).
	Threshold float64

	// FallbackMinResults is the result count below which fuzzy widening
	// kicks in for text queries. Default: 5.
	FallbackMinResults int

	// MaxFuzzyResults caps the fallback fuzzy search. Default: 50.
	MaxFuzzyResults int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		FallbackMinResults: 5,
		MaxFuzzyResults:    50,
	}
}

// Engine is the search orchestrator facade. It owns a fuzzy matcher
// over the current programme snapshot and is safe for concurrent use;
// concurrent searches over the same snapshot are independent.
type Engine struct {
	cfg     Config
	matcher *textmatch.Matcher
	history HistoryRecorder
	logger  zerolog.Logger
}

// NewEngine creates a search engine with an empty programme snapshot.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, logger zerolog.Logger) *Engine {
	if cfg.FallbackMinResults <= 0 {
		cfg.FallbackMinResults = 5
	}
	if cfg.MaxFuzzyResults <= 0 {
		cfg.MaxFuzzyResults = 50
	}

	matcher := textmatch.NewMatcher()
	if cfg.Threshold > 0 {
		matcher.SetThreshold(cfg.Threshold)
	}

	return &Engine{
		cfg:     cfg,
		matcher: matcher,
		logger:  logger.With().Str("component", "search").Logger(),
	}
}

// SetHistoryRecorder attaches the history store. A nil recorder disables
// history recording.
func (e *Engine) SetHistoryRecorder(h HistoryRecorder) {
	e.history = h
}

// SetProgrammes replaces the candidate snapshot wholesale whenever the
// schedule provider refreshes.
func (e *Engine) SetProgrammes(programmes []models.Programme) {
	e.matcher.SetProgrammes(programmes)
	e.logger.Debug().Int("programmes", len(programmes)).Msg("programme snapshot replaced")
}

// Matcher exposes the underlying fuzzy matcher for typo correction and
// direct fuzzy queries.
func (e *Engine) Matcher() *textmatch.Matcher {
	return e.matcher
}

// Search executes the full search pipeline: parse, filter, widen, score,
// sort, facet, suggest, record. It never hard-fails on malformed input;
// the only error returned is context cancellation.
func (e *Engine) Search(ctx context.Context, userID string, filters models.SearchFilters) (*models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	metrics.SearchesTotal.Inc()

	parsed := ParseQuery(filters.Query)
	merged := MergeFilters(filters, parsed)

	loweredTerms := make([]string, 0, len(parsed.Terms))
	for _, term := range parsed.Terms {
		loweredTerms = append(loweredTerms, strings.ToLower(term))
	}

	candidates := e.matcher.Programmes()

	results := make([]models.ScoredProgramme, 0, len(candidates))
	for i := range candidates {
		if matchesFilters(&candidates[i], &merged, loweredTerms) {
			results = append(results, models.ScoredProgramme{Programme: candidates[i]})
		}
	}

	// Fallback widening: recover near-misses (minor misspellings) that
	// exact substring filtering drops. Appended items bypass the
	// structured facet filters; recall is deliberately favored over
	// precision here.
	fuzzyScored := make(map[string]bool)
	if len(results) < e.cfg.FallbackMinResults && len(loweredTerms) > 0 {
		metrics.FuzzyFallbacks.Inc()

		present := make(map[string]bool, len(results))
		for i := range results {
			present[results[i].ID] = true
		}

		fuzzy := e.matcher.Search(filters.Query, textmatch.SearchOptions{MaxResults: e.cfg.MaxFuzzyResults})
		for _, match := range fuzzy {
			if present[match.Programme.ID] {
				continue
			}
			results = append(results, models.ScoredProgramme{
				Programme: match.Programme,
				Relevance: match.Score,
			})
			fuzzyScored[match.Programme.ID] = true
		}

		e.logger.Debug().
			Str("query", filters.Query).
			Int("fuzzy_appended", len(fuzzyScored)).
			Msg("fallback widening applied")
	}

	sortField := merged.SortBy
	if sortField == "" {
		sortField = models.SortRelevance
	}
	if sortField == models.SortRelevance && len(loweredTerms) > 0 {
		now := time.Now()
		for i := range results {
			if fuzzyScored[results[i].ID] {
				continue
			}
			results[i].Relevance = RelevanceScore(&results[i].Programme, parsed.Terms, now)
		}
	}

	sortResults(results, sortField, merged.SortOrder)

	facets := buildFacets(results, &merged)

	suggestions := buildSuggestions(filters.Query, candidates)
	if len(results) == 0 && merged.HasTextQuery() {
		// Nothing matched: offer "did you mean" near-misses so an empty
		// result set is still actionable.
		seen := make(map[string]struct{}, len(suggestions))
		for _, s := range suggestions {
			seen[s.Text] = struct{}{}
		}
		_, didYouMean := e.matcher.SearchWithSuggestions(filters.Query, textmatch.SuggestOptions{})
		for _, title := range didYouMean {
			if _, dup := seen[title]; dup {
				continue
			}
			suggestions = append(suggestions, models.Suggestion{Text: title})
		}
	}
	metrics.SuggestionsGenerated.Add(float64(len(suggestions)))

	e.recordHistory(ctx, userID, &merged, len(results))

	elapsed := time.Since(start)
	metrics.SearchDuration.Observe(elapsed.Seconds())
	metrics.SearchResults.Observe(float64(len(results)))

	return &models.SearchResult{
		Programmes:   results,
		TotalResults: len(results),
		SearchTimeMS: elapsed.Milliseconds(),
		Filters:      merged,
		Suggestions:  suggestions,
		Facets:       facets,
	}, nil
}

// matchesFilters applies every structured facet to one programme.
func matchesFilters(p *models.Programme, f *models.SearchFilters, loweredTerms []string) bool {
	if len(loweredTerms) > 0 {
		haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Genre + " " + p.ChannelName)
		found := false
		for _, t := range loweredTerms {
			if t != "" && strings.Contains(haystack, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if !anySubstring(p.Genre, f.Genres) {
		return false
	}
	if !anySubstring(p.ChannelName, f.Channels) {
		return false
	}
	if !anySubstring(p.Rating, f.Ratings) {
		return false
	}

	if !matchesTimeSlots(p.StartTime.Hour(), f.TimeSlots) {
		return false
	}

	if f.DateRange != nil {
		if p.StartTime.Before(f.DateRange.Start) || p.StartTime.After(f.DateRange.End) {
			return false
		}
	}

	if f.Duration != nil {
		if f.Duration.Min > 0 && p.Duration < f.Duration.Min {
			return false
		}
		if f.Duration.Max > 0 && p.Duration > f.Duration.Max {
			return false
		}
	}

	if f.StartTime != nil && p.StartTime.Before(*f.StartTime) {
		return false
	}
	if f.EndTime != nil && p.StartTime.After(*f.EndTime) {
		return false
	}

	return true
}

// anySubstring reports whether the field matches at least one selected
// value, case-insensitively. An empty selection is no constraint.
func anySubstring(field string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	lower := strings.ToLower(field)
	for _, s := range selected {
		if s != "" && strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// matchesTimeSlots reports whether the start hour falls in at least one
// selected canonical slot. Unknown slot IDs are ignored; a selection
// that resolves to nothing is no constraint.
func matchesTimeSlots(hour int, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	resolved := false
	for _, id := range selected {
		slot, ok := models.TimeSlotByID(id)
		if !ok {
			continue
		}
		resolved = true
		if slot.Contains(hour) {
			return true
		}
	}
	return !resolved
}

// sortResults orders the result list. Each field has a natural
// direction (descending score for relevance, ascending otherwise);
// an explicit descending order negates the comparison.
func sortResults(results []models.ScoredProgramme, field models.SortField, order models.SortOrder) {
	cmp := compareFunc(field)
	desc := order == models.SortDesc
	sort.SliceStable(results, func(i, j int) bool {
		c := cmp(&results[i], &results[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareFunc returns the natural three-way comparison for a sort field.
func compareFunc(field models.SortField) func(a, b *models.ScoredProgramme) int {
	switch field {
	case models.SortTitle:
		return func(a, b *models.ScoredProgramme) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case models.SortStartTime:
		return func(a, b *models.ScoredProgramme) int {
			return a.StartTime.Compare(b.StartTime)
		}
	case models.SortChannel:
		return func(a, b *models.ScoredProgramme) int {
			return strings.Compare(strings.ToLower(a.ChannelName), strings.ToLower(b.ChannelName))
		}
	case models.SortGenre:
		return func(a, b *models.ScoredProgramme) int {
			return strings.Compare(strings.ToLower(a.Genre), strings.ToLower(b.Genre))
		}
	case models.SortDuration:
		return func(a, b *models.ScoredProgramme) int {
			return a.Duration - b.Duration
		}
	default:
		// Relevance: higher scores first is the natural direction.
		return func(a, b *models.ScoredProgramme) int {
			switch {
			case a.Relevance > b.Relevance:
				return -1
			case a.Relevance < b.Relevance:
				return 1
			default:
				return 0
			}
		}
	}
}

// recordHistory appends an executed-query record. Store failures are
// logged and swallowed; history is best-effort.
func (e *Engine) recordHistory(ctx context.Context, userID string, merged *models.SearchFilters, resultCount int) {
	if e.history == nil || userID == "" || !merged.HasTextQuery() {
		return
	}

	entry := models.SearchHistoryEntry{
		ID:     uuid.NewString(),
		UserID: userID,
		Query:  merged.Query,
		Facets: models.HistoryFacets{
			Genres:    merged.Genres,
			Channels:  merged.Channels,
			Ratings:   merged.Ratings,
			TimeSlots: merged.TimeSlots,
		},
		ResultCount: resultCount,
		ExecutedAt:  time.Now(),
	}

	if err := e.history.AppendHistory(ctx, entry); err != nil {
		e.logger.Warn().Err(err).Str("user", userID).Msg("failed to record search history")
	}
}
