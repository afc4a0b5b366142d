// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Package textmatch implements the text similarity primitives and the
// fuzzy programme matcher used by the search engine.
//
// The primitives (edit distance, similarity ratio, Soundex, Jaro-Winkler)
// are pure functions: deterministic, allocation-local and safe for
// concurrent use from parallel scoring operations.
//
// The Matcher holds an immutable programme snapshot that is replaced
// wholesale via an atomic pointer swap, so concurrent searches never
// observe a partially-updated candidate list.
package textmatch
