// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

// Package store persists saved searches and per-user search history in
// BadgerDB. Records are JSON-encoded under typed key prefixes; secondary
// user-scoped keys support efficient per-user listing without a full
// scan.
package store
