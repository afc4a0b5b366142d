// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/logging"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/search"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/store"
)

// envelope mirrors models.APIResponse with a deferred Data payload so
// tests can decode it into the endpoint-specific type.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testProgrammes(now time.Time) []models.Programme {
	day := now.Truncate(24 * time.Hour)
	return []models.Programme{
		{
			ID: "p1", Title: "BBC News at Six", Genre: "News",
			ChannelID: "bbc1", ChannelName: "BBC One",
			StartTime: day.Add(18 * time.Hour), EndTime: day.Add(18*time.Hour + 30*time.Minute),
			Duration: 30, Description: "The latest national and international news stories.",
		},
		{
			ID: "p2", Title: "EastEnders", Genre: "Soap",
			ChannelID: "bbc1", ChannelName: "BBC One",
			StartTime: day.Add(19*time.Hour + 30*time.Minute), EndTime: day.Add(20 * time.Hour),
			Duration: 30, Rating: "PG", Description: "Drama from Albert Square.",
		},
		{
			ID: "p3", Title: "Coronation Street", Genre: "Soap",
			ChannelID: "itv1", ChannelName: "ITV1",
			StartTime: day.Add(20 * time.Hour), EndTime: day.Add(21 * time.Hour),
			Duration: 60, Description: "Life in the famous Weatherfield street.",
		},
	}
}

// newTestServer builds the full route tree over an in-memory store and
// a three-programme schedule.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := store.Open(store.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		if cerr := db.Close(); cerr != nil {
			t.Errorf("closing badger: %v", cerr)
		}
	})

	saved := store.NewSavedSearchStore(db)
	history := store.NewHistoryStore(db, logging.Logger())

	engine := search.NewEngine(search.DefaultConfig(), logging.Logger())
	engine.SetProgrammes(testProgrammes(time.Now()))
	engine.SetHistoryRecorder(history)

	router := NewRouter(NewHandler(engine, saved, history), NewMiddleware(&MiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		RateLimitDisabled:  true,
	}))

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues a request with an optional JSON body and decodes the
// response envelope.
func doJSON(t *testing.T, srv *httptest.Server, method, path string, body interface{}, headers map[string]string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, envelope{}
	}

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	status, env := doJSON(t, srv, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "success", env.Status)

	var health HealthResponse
	decodeData(t, env, &health)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, 3, health.ProgrammeCount)
	require.True(t, health.StoreAvailable)
}

func TestRouter_Metrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/nope")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "fixed-id")
	resp2, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close() //nolint:errcheck
	require.Equal(t, "fixed-id", resp2.Header.Get("X-Request-ID"))
}
