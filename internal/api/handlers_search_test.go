// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

func TestSearch_TextQuery(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{Query: "EastEnders"}, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "success", env.Status)

	var result models.SearchResult
	decodeData(t, env, &result)
	require.NotEmpty(t, result.Programmes)
	require.Equal(t, "EastEnders", result.Programmes[0].Title)
	require.Equal(t, len(result.Programmes), result.TotalResults)
}

func TestSearch_StructuredFacets(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{Genres: []string{"soap"}}, nil)
	require.Equal(t, http.StatusOK, status)

	var result models.SearchResult
	decodeData(t, env, &result)
	require.Equal(t, 2, result.TotalResults)
}

func TestSearch_InvalidSortField(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{SortBy: "popularity"}, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "error", env.Status)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestSearch_UnknownTimeSlot(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{TimeSlots: []string{"brunch"}}, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestSearch_QueryTooLong(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{Query: strings.Repeat("x", 201)}, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestSearch_InvertedDateRange(t *testing.T) {
	srv := newTestServer(t)

	now := time.Now()
	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{DateRange: &models.DateRange{Start: now, End: now.Add(-time.Hour)}}, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	require.Contains(t, env.Error.Message, "date_range")
}

func TestSearch_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/search",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearch_SecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/timeslots", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}

func TestTimeSlots_Catalogue(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodGet, "/api/v1/timeslots", nil, nil)
	require.Equal(t, http.StatusOK, status)

	var slots []models.TimeSlot
	decodeData(t, env, &slots)
	require.Len(t, slots, 7)
	require.Equal(t, "morning", slots[0].ID)
	require.Equal(t, "overnight", slots[6].ID)
}

func TestReplaceProgrammes_Snapshot(t *testing.T) {
	srv := newTestServer(t)

	now := time.Now()
	status, env := doJSON(t, srv, http.MethodPut, "/api/v1/programmes",
		ProgrammesRequest{Programmes: []models.Programme{
			{
				ID: "n1", Title: "Newsnight", Genre: "News",
				ChannelID: "bbc2", ChannelName: "BBC Two",
				StartTime: now, EndTime: now.Add(45 * time.Minute),
			},
		}}, nil)
	require.Equal(t, http.StatusOK, status)

	var snap SnapshotResponse
	decodeData(t, env, &snap)
	require.Equal(t, 1, snap.Count)

	// The old snapshot is gone: EastEnders no longer matches exactly.
	_, searchEnv := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{Genres: []string{"soap"}}, nil)
	var result models.SearchResult
	decodeData(t, searchEnv, &result)
	require.Zero(t, result.TotalResults)
}

func TestReplaceProgrammes_DerivesDuration(t *testing.T) {
	srv := newTestServer(t)

	now := time.Now().Truncate(time.Minute)
	status, _ := doJSON(t, srv, http.MethodPut, "/api/v1/programmes",
		ProgrammesRequest{Programmes: []models.Programme{
			{
				ID: "n1", Title: "Newsnight", ChannelID: "bbc2", ChannelName: "BBC Two",
				StartTime: now, EndTime: now.Add(45 * time.Minute),
			},
		}}, nil)
	require.Equal(t, http.StatusOK, status)

	_, env := doJSON(t, srv, http.MethodPost, "/api/v1/search",
		SearchRequest{Query: "Newsnight"}, nil)
	var result models.SearchResult
	decodeData(t, env, &result)
	require.NotEmpty(t, result.Programmes)
	require.Equal(t, 45, result.Programmes[0].Duration)
}

func TestReplaceProgrammes_Invalid(t *testing.T) {
	srv := newTestServer(t)
	now := time.Now()

	cases := []struct {
		name       string
		programmes []models.Programme
	}{
		{name: "missing title", programmes: []models.Programme{
			{ID: "x", ChannelName: "BBC One", StartTime: now, EndTime: now.Add(time.Hour)},
		}},
		{name: "end before start", programmes: []models.Programme{
			{ID: "x", Title: "T", ChannelName: "BBC One", StartTime: now, EndTime: now.Add(-time.Hour)},
		}},
		{name: "duplicate id", programmes: []models.Programme{
			{ID: "x", Title: "T", ChannelName: "BBC One", StartTime: now, EndTime: now.Add(time.Hour)},
			{ID: "x", Title: "U", ChannelName: "BBC Two", StartTime: now, EndTime: now.Add(time.Hour)},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := doJSON(t, srv, http.MethodPut, "/api/v1/programmes",
				ProgrammesRequest{Programmes: tc.programmes}, nil)
			require.Equal(t, http.StatusBadRequest, status)
			require.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		})
	}
}
