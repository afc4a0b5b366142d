// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Package metrics provides Prometheus instrumentation for the search
// service.
//
// Metrics are exposed at the /metrics endpoint in Prometheus text
// format:
//
//	curl http://localhost:8175/metrics
//
// Search metrics:
//   - search_requests_total: executed searches (counter)
//   - search_duration_seconds: search latency (histogram)
//   - search_results_returned: result-set sizes (histogram)
//   - search_fuzzy_fallbacks_total: searches widened by fuzzy matching (counter)
//   - search_suggestions_generated_total: suggestions produced (counter)
//
// HTTP metrics:
//   - http_requests_total: total HTTP requests (counter)
//     Labels: method, path, status
//   - http_request_duration_seconds: request latency (histogram)
//     Labels: method, path
//
// Store metrics:
//   - store_history_evictions_total: history entries evicted by the
//     per-user cap (counter)
package metrics
