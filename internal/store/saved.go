// DigiGuide - Television Programme Guide and Search
// Copyright 2026 Nicky Leech (nickyleech)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nickyleech/digiguide-replacement-sub000

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/nickyleech/digiguide-replacement-sub000/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	savedKeyPrefix     = "saved:"
	savedUserKeyPrefix = "saved_user:"
)

// SavedSearchStore persists user-owned saved searches. Each record is
// stored once by ID with a secondary user-scoped key for listing.
type SavedSearchStore struct {
	db *badger.DB
}

// NewSavedSearchStore creates a BadgerDB-backed saved-search store.
func NewSavedSearchStore(db *badger.DB) *SavedSearchStore {
	return &SavedSearchStore{db: db}
}

// Create stores a new saved search. The caller supplies the ID; created
// and updated timestamps are set here if unset.
func (s *SavedSearchStore) Create(ctx context.Context, search *models.SavedSearch) error {
	if search.ID == "" || search.UserID == "" {
		return errors.New("saved search requires id and user_id")
	}
	now := time.Now()
	if search.CreatedAt.IsZero() {
		search.CreatedAt = now
	}
	if search.UpdatedAt.IsZero() {
		search.UpdatedAt = now
	}

	data, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("marshal saved search: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(savedKeyPrefix + search.ID)
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set saved search: %w", err)
		}

		// Secondary key for per-user listing
		userKey := []byte(savedUserKeyPrefix + search.UserID + ":" + search.ID)
		if err := txn.Set(userKey, []byte(search.ID)); err != nil {
			return fmt.Errorf("set user mapping: %w", err)
		}

		return nil
	})
}

// Get retrieves a saved search by ID.
func (s *SavedSearchStore) Get(ctx context.Context, id string) (*models.SavedSearch, error) {
	var search models.SavedSearch

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(savedKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get saved search: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &search)
		})
	})
	if err != nil {
		return nil, err
	}
	return &search, nil
}

// GetOwned retrieves a saved search and verifies ownership.
func (s *SavedSearchStore) GetOwned(ctx context.Context, userID, id string) (*models.SavedSearch, error) {
	search, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if search.UserID != userID {
		return nil, ErrOwnershipMismatch
	}
	return search, nil
}

// Update replaces an existing saved search. The record's user, ID and
// creation time are preserved; UpdatedAt is bumped.
func (s *SavedSearchStore) Update(ctx context.Context, search *models.SavedSearch) error {
	existing, err := s.Get(ctx, search.ID)
	if err != nil {
		return err
	}
	if existing.UserID != search.UserID {
		return ErrOwnershipMismatch
	}

	search.CreatedAt = existing.CreatedAt
	search.UpdatedAt = time.Now()

	data, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("marshal saved search: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(savedKeyPrefix+search.ID), data)
	})
}

// Delete removes a saved search and its user mapping. Deleting a record
// that does not exist is not an error.
func (s *SavedSearchStore) Delete(ctx context.Context, userID, id string) error {
	search, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if search.UserID != userID {
		return ErrOwnershipMismatch
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(savedKeyPrefix + id)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete saved search: %w", err)
		}
		userKey := []byte(savedUserKeyPrefix + search.UserID + ":" + id)
		if err := txn.Delete(userKey); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete user mapping: %w", err)
		}
		return nil
	})
}

// ListByUser returns all saved searches for a user, most recently
// updated first. Records that fail to decode are skipped.
func (s *SavedSearchStore) ListByUser(ctx context.Context, userID string) ([]*models.SavedSearch, error) {
	var searches []*models.SavedSearch

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(savedUserKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var id string
			if err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				continue
			}

			item, err := txn.Get([]byte(savedKeyPrefix + id))
			if err != nil {
				continue // mapping may be stale
			}

			var search models.SavedSearch
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &search)
			}); err != nil {
				continue
			}
			searches = append(searches, &search)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list saved searches: %w", err)
	}

	sort.SliceStable(searches, func(i, j int) bool {
		return searches[i].UpdatedAt.After(searches[j].UpdatedAt)
	})
	return searches, nil
}

// SetAlert updates the alert flag and frequency on a saved search.
func (s *SavedSearchStore) SetAlert(ctx context.Context, userID, id string, enabled bool, freq models.AlertFrequency) (*models.SavedSearch, error) {
	search, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if enabled && !freq.Valid() {
		return nil, fmt.Errorf("invalid alert frequency %q", freq)
	}

	search.AlertEnabled = enabled
	if enabled {
		search.AlertFrequency = freq
	}
	search.UpdatedAt = time.Now()

	data, err := json.Marshal(search)
	if err != nil {
		return nil, fmt.Errorf("marshal saved search: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(savedKeyPrefix+id), data)
	})
	if err != nil {
		return nil, err
	}
	return search, nil
}

// MarkExecuted records that a saved search was just run.
func (s *SavedSearchStore) MarkExecuted(ctx context.Context, userID, id string, at time.Time) error {
	search, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	search.LastExecutedAt = &at
	search.UpdatedAt = time.Now()

	data, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("marshal saved search: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(savedKeyPrefix+id), data)
	})
}
