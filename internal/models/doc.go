// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Package models defines the data types shared across the DigiGuide search
// engine: programmes, search filters, results, facets, saved searches and
// search history.
//
// Programmes are immutable once issued by the schedule provider. The search
// engine never mutates a Programme; relevance scores are carried on the
// transient ScoredProgramme wrapper and are never persisted.
//
// All filter list fields (genres, channels, ratings, time slots) are sets in
// spirit: uniqueness matters, order does not. Absence of a duration bound
// means unbounded on that side.
package models
