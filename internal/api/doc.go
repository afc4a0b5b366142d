// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Package api exposes the search engine and the saved-search store over
// HTTP. Routing uses chi; every endpoint returns the models.APIResponse
// envelope with a stable machine-readable error code on failure.
//
// The surface is deliberately small: one search endpoint, a bulk
// schedule snapshot endpoint, saved-search CRUD scoped under the owning
// user, history list/clear, and the canonical time-slot catalogue.
package api
