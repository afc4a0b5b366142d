// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/logging"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrOwnershipMismatch is returned when a record exists but belongs to a
// different user.
var ErrOwnershipMismatch = errors.New("record owned by another user")

// Options configures the underlying BadgerDB instance.
type Options struct {
	// Path is the on-disk database directory. Ignored when InMemory is
	// set.
	Path string

	// InMemory runs the database without any on-disk state. Used by
	// tests and ephemeral deployments.
	InMemory bool

	// SyncWrites forces an fsync on every commit.
	SyncWrites bool
}

// Open creates (or opens) the BadgerDB database backing all stores.
// The caller owns the returned handle and must Close it.
func Open(opts Options) (*badger.DB, error) {
	var badgerOpts badger.Options
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		badgerOpts = badger.DefaultOptions(opts.Path)
	}
	badgerOpts.SyncWrites = opts.SyncWrites
	badgerOpts.Logger = nil

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", opts.Path).
		Bool("in_memory", opts.InMemory).
		Bool("sync_writes", opts.SyncWrites).
		Msg("store opened")
	return db, nil
}

// RunGC runs one value-log garbage collection cycle. Badger returns
// ErrNoRewrite when there was nothing to collect; that is not an error
// to the caller.
func RunGC(db *badger.DB, discardRatio float64) error {
	err := db.RunValueLogGC(discardRatio)
	if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return fmt.Errorf("value log GC: %w", err)
	}
	return nil
}
