// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package services

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/store"
)

// StoreGCService periodically runs badger value-log garbage collection.
// Badger never reclaims value-log space on its own; a supervised loop
// is the documented pattern.
type StoreGCService struct {
	db           *badger.DB
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
}

// NewStoreGCService creates the GC loop. Zero interval defaults to ten
// minutes; a non-positive ratio defaults to 0.5.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStoreGCService(db *badger.DB, interval time.Duration, discardRatio float64, logger zerolog.Logger) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = 0.5
	}
	return &StoreGCService{
		db:           db,
		interval:     interval,
		discardRatio: discardRatio,
		logger:       logger,
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := store.RunGC(s.db, s.discardRatio); err != nil {
				s.logger.Warn().Err(err).Msg("value-log GC pass failed")
			}
		}
	}
}

func (s *StoreGCService) String() string {
	return "store-gc"
}
