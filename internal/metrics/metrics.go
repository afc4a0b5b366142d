// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts executed searches.
	SearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of programme searches executed",
		},
	)

	// SearchDuration observes end-to-end search latency.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Programme search latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SearchResults observes result-set sizes.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of programmes returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	// FuzzyFallbacks counts searches that triggered fallback widening.
	FuzzyFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_fuzzy_fallbacks_total",
			Help: "Total number of searches widened by the fuzzy matcher",
		},
	)

	// SuggestionsGenerated counts suggestions handed to the UI.
	SuggestionsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_suggestions_generated_total",
			Help: "Total number of query suggestions generated",
		},
	)

	// HTTPRequests counts HTTP requests by method, path and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration observes HTTP request latency by method and path.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// HistoryEvictions counts history entries removed by the 50-entry cap.
	HistoryEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_history_evictions_total",
			Help: "Total number of search history entries evicted by the per-user cap",
		},
	)
)
