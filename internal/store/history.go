// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/metrics"
	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

const historyKeyPrefix = "history:"

// HistoryCap is the maximum number of history entries kept per user.
// Appending beyond the cap evicts the oldest entries.
const HistoryCap = 50

// HistoryStore persists per-user search history as an append-only,
// capped log. Keys embed the execution timestamp so Badger's ordered
// iteration yields entries oldest-first.
type HistoryStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

// NewHistoryStore creates a BadgerDB-backed history store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHistoryStore(db *badger.DB, logger zerolog.Logger) *HistoryStore {
	return &HistoryStore{
		db:     db,
		logger: logger.With().Str("component", "history_store").Logger(),
	}
}

// historyKey builds history:<userID>:<nanos>:<id>. The zero-padded
// nanosecond timestamp keeps lexicographic and chronological order in
// agreement.
func historyKey(entry *models.SearchHistoryEntry) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d:%s",
		historyKeyPrefix, entry.UserID, entry.ExecutedAt.UnixNano(), entry.ID))
}

func historyUserPrefix(userID string) []byte {
	return []byte(historyKeyPrefix + userID + ":")
}

// AppendHistory stores an executed-query record and evicts the oldest
// entries once the user's log exceeds HistoryCap.
func (s *HistoryStore) AppendHistory(ctx context.Context, entry models.SearchHistoryEntry) error {
	if entry.UserID == "" {
		return errors.New("history entry requires user_id")
	}
	if entry.ExecutedAt.IsZero() {
		entry.ExecutedAt = time.Now()
	}

	data, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	evicted := 0
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(historyKey(&entry), data); err != nil {
			return fmt.Errorf("set history entry: %w", err)
		}

		// Collect the user's keys oldest-first and trim the front.
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := historyUserPrefix(entry.UserID)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}

		for len(keys) > HistoryCap {
			if err := txn.Delete(keys[0]); err != nil {
				return fmt.Errorf("evict history entry: %w", err)
			}
			keys = keys[1:]
			evicted++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if evicted > 0 {
		metrics.HistoryEvictions.Add(float64(evicted))
		s.logger.Debug().
			Str("user", entry.UserID).
			Int("evicted", evicted).
			Msg("history cap enforced")
	}
	return nil
}

// ListByUser returns up to limit history entries for a user, newest
// first. A non-positive limit returns the full capped log. Records that
// fail to decode are skipped and logged.
func (s *HistoryStore) ListByUser(ctx context.Context, userID string, limit int) ([]models.SearchHistoryEntry, error) {
	if limit <= 0 || limit > HistoryCap {
		limit = HistoryCap
	}

	entries := make([]models.SearchHistoryEntry, 0, limit)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := historyUserPrefix(userID)
		// Reverse iteration seeks past the last key in the prefix range.
		seek := append(append([]byte{}, prefix...), 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if len(entries) >= limit {
				break
			}
			var entry models.SearchHistoryEntry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				s.logger.Warn().Err(err).
					Str("key", string(it.Item().Key())).
					Msg("skipping undecodable history entry")
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// Clear deletes a user's entire history log and returns the number of
// entries removed.
func (s *HistoryStore) Clear(ctx context.Context, userID string) (int, error) {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := historyUserPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan history: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("delete history entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}
