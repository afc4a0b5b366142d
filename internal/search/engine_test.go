// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package search

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

// recordingHistory captures history entries handed to the engine's
// best-effort recorder.
type recordingHistory struct {
	entries []models.SearchHistoryEntry
}

func (r *recordingHistory) AppendHistory(_ context.Context, entry models.SearchHistoryEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func testSchedule(now time.Time) []models.Programme {
	sixPM := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, time.UTC)
	return []models.Programme{
		{
			ID:          "p1",
			Title:       "BBC News at Six",
			Description: "The latest national and international news stories.",
			Genre:       "News",
			ChannelID:   "bbc1",
			ChannelName: "BBC One",
			StartTime:   sixPM,
			EndTime:     sixPM.Add(30 * time.Minute),
			Duration:    30,
		},
		{
			ID:          "p2",
			Title:       "EastEnders",
			Description: "Drama from Albert Square.",
			Genre:       "Soap",
			ChannelID:   "bbc1",
			ChannelName: "BBC One",
			StartTime:   sixPM.Add(90 * time.Minute),
			EndTime:     sixPM.Add(2 * time.Hour),
			Duration:    30,
			Rating:      "PG",
		},
		{
			ID:          "p3",
			Title:       "Coronation Street",
			Description: "Life in the famous Weatherfield street.",
			Genre:       "Soap",
			ChannelID:   "itv1",
			ChannelName: "ITV1",
			StartTime:   sixPM.Add(2 * time.Hour),
			EndTime:     sixPM.Add(3 * time.Hour),
			Duration:    60,
			Rating:      "PG",
		},
		{
			ID:          "p4",
			Title:       "Match of the Day",
			Description: "Highlights of today's Premier League football.",
			Genre:       "Sport",
			ChannelID:   "bbc1",
			ChannelName: "BBC One",
			StartTime:   time.Date(now.Year(), now.Month(), now.Day(), 22, 30, 0, 0, time.UTC),
			EndTime:     time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, time.UTC),
			Duration:    89,
			Rating:      "15",
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, []models.Programme) {
	t.Helper()
	sched := testSchedule(time.Now().UTC())
	e := NewEngine(DefaultConfig(), zerolog.Nop())
	e.SetProgrammes(sched)
	return e, sched
}

func TestEngine_Search_TextQuery(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		Query:  "news",
		SortBy: models.SortRelevance,
	})
	require.NoError(t, err)

	// The substring match ranks first; fallback widening may append
	// fuzzy near-misses behind it, but those carry scores in (0,1] and
	// can never outrank a term-scored result.
	require.NotZero(t, result.TotalResults)
	assert.Equal(t, "BBC News at Six", result.Programmes[0].Title)
	assert.GreaterOrEqual(t, result.Programmes[0].Relevance, 10.0)
	for _, p := range result.Programmes[1:] {
		assert.LessOrEqual(t, p.Relevance, 1.0)
	}
	assert.Len(t, result.Programmes, result.TotalResults)
}

func TestEngine_Search_NoMatches(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		Query: "zzzz",
	})
	require.NoError(t, err)

	assert.Zero(t, result.TotalResults)
	assert.NotNil(t, result.Programmes)
	assert.Empty(t, result.Programmes)
	assert.Empty(t, result.Suggestions)
}

func TestEngine_Search_NoMatchesOffersNearMiss(t *testing.T) {
	// A near-unreachable threshold keeps the fuzzy fallback empty, so
	// the did-you-mean path is the only source of suggestions.
	e := NewEngine(Config{Threshold: 0.97}, zerolog.Nop())
	e.SetProgrammes(testSchedule(time.Now().UTC()))

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		Query: "Enderby",
	})
	require.NoError(t, err)

	assert.Zero(t, result.TotalResults)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "EastEnders", result.Suggestions[0].Text)
	assert.Empty(t, result.Suggestions[0].Spans, "did-you-mean entries carry no highlight spans")
}

func TestEngine_Search_StructuredFacets(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		Genres: []string{"soap"},
	})
	require.NoError(t, err)

	require.Equal(t, 2, result.TotalResults)
	for _, p := range result.Programmes {
		assert.Equal(t, "Soap", p.Genre)
	}
}

func TestEngine_Search_InlineFiltersMerged(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		Query: "channel:itv street",
	})
	require.NoError(t, err)

	require.NotZero(t, result.TotalResults)
	assert.Equal(t, "Coronation Street", result.Programmes[0].Title)
	assert.Contains(t, result.Filters.Channels, "itv")
}

func TestEngine_Search_TimeSlotWraparound(t *testing.T) {
	e, _ := newTestEngine(t)

	// Match of the Day starts at 22:30, inside the 20-23 primetime slot
	// but outside morning.
	result, err := e.Search(context.Background(), "", models.SearchFilters{
		TimeSlots: []string{"primetime"},
	})
	require.NoError(t, err)
	ids := resultIDs(result)
	assert.Contains(t, ids, "p3") // 20:00 start
	assert.Contains(t, ids, "p4") // 22:30 start
	assert.NotContains(t, ids, "p1")

	morning, err := e.Search(context.Background(), "", models.SearchFilters{
		TimeSlots: []string{"morning"},
	})
	require.NoError(t, err)
	assert.Zero(t, morning.TotalResults)
}

func TestEngine_Search_DurationBoundary(t *testing.T) {
	e, _ := newTestEngine(t)

	// p3 runs exactly 60 minutes: an inclusive max of 60 keeps it, 59
	// drops it.
	inclusive, err := e.Search(context.Background(), "", models.SearchFilters{
		Duration: &models.DurationRange{Max: 60},
	})
	require.NoError(t, err)
	assert.Contains(t, resultIDs(inclusive), "p3")

	exclusive, err := e.Search(context.Background(), "", models.SearchFilters{
		Duration: &models.DurationRange{Max: 59},
	})
	require.NoError(t, err)
	assert.NotContains(t, resultIDs(exclusive), "p3")
}

func TestEngine_Search_DateRangeInclusive(t *testing.T) {
	e, sched := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		DateRange: &models.DateRange{
			Start: sched[0].StartTime,
			End:   sched[0].StartTime,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, resultIDs(result))
}

func TestEngine_Search_FallbackWidening(t *testing.T) {
	e, _ := newTestEngine(t)

	// The genre filter matches nothing, and the misspelled query cannot
	// pass substring filtering, so the fuzzy fallback recovers EastEnders
	// even though it bypasses the genre facet.
	result, err := e.Search(context.Background(), "", models.SearchFilters{
		Query:  "Eastendres",
		Genres: []string{"Documentary"},
	})
	require.NoError(t, err)

	require.NotZero(t, result.TotalResults)
	top := result.Programmes[0]
	assert.Equal(t, "EastEnders", top.Title)
	assert.Greater(t, top.Relevance, 0.0)
	assert.LessOrEqual(t, top.Relevance, 1.0, "fuzzy-appended items carry their fuzzy score")
}

func TestEngine_Search_SortByTitle(t *testing.T) {
	e, _ := newTestEngine(t)

	asc, err := e.Search(context.Background(), "", models.SearchFilters{
		SortBy: models.SortTitle,
	})
	require.NoError(t, err)
	require.Equal(t, 4, asc.TotalResults)
	assert.Equal(t, "BBC News at Six", asc.Programmes[0].Title)
	assert.Equal(t, "Match of the Day", asc.Programmes[3].Title)

	desc, err := e.Search(context.Background(), "", models.SearchFilters{
		SortBy:    models.SortTitle,
		SortOrder: models.SortDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Match of the Day", desc.Programmes[0].Title)
}

func TestEngine_Search_SortByStartTime(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		SortBy: models.SortStartTime,
	})
	require.NoError(t, err)
	require.Equal(t, 4, result.TotalResults)
	for i := 1; i < len(result.Programmes); i++ {
		assert.False(t, result.Programmes[i].StartTime.Before(result.Programmes[i-1].StartTime))
	}
}

func TestEngine_Search_FacetCounts(t *testing.T) {
	e, _ := newTestEngine(t)

	// Genre is unconstrained, so genre facet counts must sum to the
	// result total.
	result, err := e.Search(context.Background(), "", models.SearchFilters{})
	require.NoError(t, err)
	require.Equal(t, 4, result.TotalResults)

	sum := 0
	for _, fv := range result.Facets.Genres {
		sum += fv.Count
	}
	assert.Equal(t, result.TotalResults, sum)

	// The canonical slots partition the clock, so the same holds for the
	// time-slot facet.
	slotSum := 0
	for _, fv := range result.Facets.TimeSlots {
		slotSum += fv.Count
	}
	assert.Equal(t, result.TotalResults, slotSum)
	assert.Len(t, result.Facets.TimeSlots, 7)
}

func TestEngine_Search_FacetsNarrowAndSelect(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{
		Genres: []string{"Soap"},
	})
	require.NoError(t, err)

	// Counts reflect the filtered set, not the full schedule.
	found := false
	for _, fv := range result.Facets.Genres {
		if fv.Value == "Soap" {
			found = true
			assert.True(t, fv.Selected)
			assert.Equal(t, 2, fv.Count)
		}
	}
	assert.True(t, found, "selected genre should appear in its facet")
	for _, fv := range result.Facets.Channels {
		assert.NotZero(t, fv.Count)
	}
}

func TestEngine_Search_Suggestions(t *testing.T) {
	e, _ := newTestEngine(t)

	result, err := e.Search(context.Background(), "", models.SearchFilters{Query: "news"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Suggestions)

	// The exact genre match ranks ahead of the substring title match.
	assert.Equal(t, "News", result.Suggestions[0].Text)
	require.NotEmpty(t, result.Suggestions[0].Spans)
	assert.Equal(t, models.HighlightSpan{Start: 0, End: 4}, result.Suggestions[0].Spans[0])

	var title *models.Suggestion
	for i := range result.Suggestions {
		if result.Suggestions[i].Text == "BBC News at Six" {
			title = &result.Suggestions[i]
		}
	}
	require.NotNil(t, title, "title substring match should be suggested")
	assert.Equal(t, models.HighlightSpan{Start: 4, End: 8}, title.Spans[0])
}

func TestEngine_Search_RecordsHistory(t *testing.T) {
	e, _ := newTestEngine(t)
	rec := &recordingHistory{}
	e.SetHistoryRecorder(rec)

	result, err := e.Search(context.Background(), "user-1", models.SearchFilters{Query: "news"})
	require.NoError(t, err)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, "user-1", rec.entries[0].UserID)
	assert.Equal(t, "news", rec.entries[0].Query)
	assert.Equal(t, result.TotalResults, rec.entries[0].ResultCount)
	assert.NotEmpty(t, rec.entries[0].ID)
	assert.False(t, rec.entries[0].ExecutedAt.IsZero())
}

func TestEngine_Search_HistorySkips(t *testing.T) {
	e, _ := newTestEngine(t)
	rec := &recordingHistory{}
	e.SetHistoryRecorder(rec)

	// Blank query: browsing is not history.
	_, err := e.Search(context.Background(), "user-1", models.SearchFilters{})
	require.NoError(t, err)

	// Anonymous search: nothing to key the record by.
	_, err = e.Search(context.Background(), "", models.SearchFilters{Query: "news"})
	require.NoError(t, err)

	assert.Empty(t, rec.entries)
}

func TestEngine_Search_CanceledContext(t *testing.T) {
	e, _ := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Search(ctx, "", models.SearchFilters{Query: "news"})
	assert.ErrorIs(t, err, context.Canceled)
}

func resultIDs(result *models.SearchResult) []string {
	ids := make([]string, 0, len(result.Programmes))
	for _, p := range result.Programmes {
		ids = append(ids, p.ID)
	}
	return ids
}
