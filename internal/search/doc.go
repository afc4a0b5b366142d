// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Package search implements the programme search orchestrator: query
// parsing, structured facet filtering, relevance scoring, fuzzy fallback
// widening, facet counting and suggestion generation.
//
// The Engine is the single entry point for the guide UI. It is designed
// to never hard-fail on malformed input: blank queries short-circuit to
// empty results, unrecognized inline filters are dropped silently, and
// history persistence failures are logged but never propagated.
package search
