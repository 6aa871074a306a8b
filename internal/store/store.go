// Package store persists named game snapshots in BadgerDB.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/errors"
	"github.com/lgbarn/chessrules/internal/game"
)

// Snapshots live under this key prefix, one key per name.
const keyPrefix = "snapshot/"

// Record is the stored value: a snapshot plus when it was saved.
type Record struct {
	Name     string        `json:"name"`
	SavedAt  time.Time     `json:"saved_at"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// Store wraps BadgerDB for snapshot storage.
type Store struct {
	db *badger.DB
}

// Open opens the database in cfg.Dir, or an in-memory database when Dir
// is empty.
func Open(cfg config.StoreConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.Dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening snapshot store %q", cfg.Dir)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func key(name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%q: %w", name, errors.ErrInvalidName)
	}
	return []byte(keyPrefix + name), nil
}

// Save stores snap under name, replacing any earlier snapshot.
func (s *Store) Save(ctx context.Context, name string, snap game.Snapshot) error {
	k, err := key(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(Record{Name: name, SavedAt: time.Now().UTC(), Snapshot: snap})
	if err != nil {
		return errors.Wrapf(err, "encoding snapshot %q", name)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, data)
	})
}

// Load returns the record stored under name after verifying its
// fingerprint.
func (s *Store) Load(ctx context.Context, name string) (Record, error) {
	k, err := key(name)
	if err != nil {
		return Record{}, err
	}
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	var rec Record
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrSnapshotNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &rec); err != nil {
				return fmt.Errorf("decoding %q: %v: %w", name, err, errors.ErrCorruptSnapshot)
			}
			return nil
		})
	})
	if err != nil {
		return Record{}, err
	}

	if err := rec.Snapshot.Verify(); err != nil {
		return Record{}, errors.Wrapf(err, "snapshot %q", name)
	}
	return rec, nil
}

// List returns the stored snapshot names in key order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	return names, err
}

// Delete removes the snapshot stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	k, err := key(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, errors.ErrSnapshotNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(k)
	})
}
