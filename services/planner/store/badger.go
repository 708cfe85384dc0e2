// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/store/badgerdb"
)

// BadgerStore keeps each record as one JSON document in an embedded
// BadgerDB, keyed by "<collection>/<id>".
//
// Every operation runs in its own Badger transaction, so single-record
// writes are atomic. Identifiers returned to callers are always opaque
// strings; the key layout is internal to this file.
//
// # Thread Safety
//
// Safe for concurrent use; BadgerDB serializes conflicting transactions.
type BadgerStore struct {
	db       *badgerdb.DB
	tasks    *badgerCollection[datatypes.Task, *datatypes.Task]
	goals    *badgerCollection[datatypes.Goal, *datatypes.Goal]
	users    *badgerCollection[datatypes.User, *datatypes.User]
	settings *badgerCollection[datatypes.Settings, *datatypes.Settings]
}

// NewBadgerStore wraps an opened BadgerDB as a document store.
//
// Description:
//
//	The caller owns opening the database (see badgerdb.Open); the
//	returned store owns closing it.
//
// Inputs:
//
//	db - The managed database. Must not be nil.
//
// Outputs:
//
//	*BadgerStore - Ready-to-use store
//	error - Non-nil if db is nil
func NewBadgerStore(db *badgerdb.DB) (*BadgerStore, error) {
	if db == nil {
		return nil, errors.New("db must not be nil")
	}
	return &BadgerStore{
		db:       db,
		tasks:    &badgerCollection[datatypes.Task, *datatypes.Task]{db: db, name: CollectionTasks},
		goals:    &badgerCollection[datatypes.Goal, *datatypes.Goal]{db: db, name: CollectionGoals},
		users:    &badgerCollection[datatypes.User, *datatypes.User]{db: db, name: CollectionUsers},
		settings: &badgerCollection[datatypes.Settings, *datatypes.Settings]{db: db, name: CollectionSettings},
	}, nil
}

// Tasks returns the tasks collection.
func (s *BadgerStore) Tasks() Collection[*datatypes.Task] { return s.tasks }

// Goals returns the goals collection.
func (s *BadgerStore) Goals() Collection[*datatypes.Goal] { return s.goals }

// Users returns the users collection.
func (s *BadgerStore) Users() Collection[*datatypes.User] { return s.users }

// Settings returns the settings collection.
func (s *BadgerStore) Settings() Collection[*datatypes.Settings] { return s.settings }

// Close stops background GC and closes the underlying database.
func (s *BadgerStore) Close() error { return s.db.Close() }

// badgerCollection is one key-prefix of the database holding records of
// a single entity type. The two type parameters are the pointer-target
// idiom: T is the struct, PT its pointer satisfying Entity, so decode
// can allocate fresh records with new(T).
type badgerCollection[T any, PT interface {
	*T
	Entity
}] struct {
	db   *badgerdb.DB
	name string
}

func (c *badgerCollection[T, PT]) key(id string) []byte {
	return []byte(c.name + "/" + id)
}

func (c *badgerCollection[T, PT]) keyPrefix() []byte {
	return []byte(c.name + "/")
}

func (c *badgerCollection[T, PT]) decode(data []byte) (PT, error) {
	rec := PT(new(T))
	if err := json.Unmarshal(data, rec); err != nil {
		var zero PT
		return zero, fmt.Errorf("decode %s record: %w", c.name, err)
	}
	return rec, nil
}

func (c *badgerCollection[T, PT]) encode(rec PT) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s record: %w", c.name, err)
	}
	return data, nil
}

// scan walks every record in the collection within the given
// transaction, stopping early when fn returns false.
func (c *badgerCollection[T, PT]) scan(txn *badger.Txn, fn func(rec PT) bool) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = c.keyPrefix()
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		var rec PT
		err := it.Item().Value(func(val []byte) error {
			var decodeErr error
			rec, decodeErr = c.decode(val)
			return decodeErr
		})
		if err != nil {
			return err
		}
		if !fn(rec) {
			return nil
		}
	}
	return nil
}

func (c *badgerCollection[T, PT]) List(ctx context.Context) ([]PT, error) {
	var records []PT
	err := c.db.WithReadTxn(ctx, func(txn *badger.Txn) error {
		return c.scan(txn, func(rec PT) bool {
			records = append(records, rec)
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *badgerCollection[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	var zero PT
	var rec PT
	err := c.db.WithReadTxn(ctx, func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get %s/%s: %w", c.name, id, err)
		}
		return item.Value(func(val []byte) error {
			var decodeErr error
			rec, decodeErr = c.decode(val)
			return decodeErr
		})
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

func (c *badgerCollection[T, PT]) FindOne(ctx context.Context, pred Predicate[PT]) (PT, error) {
	var zero PT
	var found PT
	err := c.db.WithReadTxn(ctx, func(txn *badger.Txn) error {
		return c.scan(txn, func(rec PT) bool {
			if pred(rec) {
				found = rec
				return false
			}
			return true
		})
	})
	if err != nil {
		return zero, err
	}
	if found == nil {
		return zero, ErrNotFound
	}
	return found, nil
}

func (c *badgerCollection[T, PT]) FindAll(ctx context.Context, pred Predicate[PT]) ([]PT, error) {
	matched := make([]PT, 0)
	err := c.db.WithReadTxn(ctx, func(txn *badger.Txn) error {
		return c.scan(txn, func(rec PT) bool {
			if pred(rec) {
				matched = append(matched, rec)
			}
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}

func (c *badgerCollection[T, PT]) Insert(ctx context.Context, rec PT) (PT, error) {
	var zero PT
	if rec.GetID() == "" {
		rec.SetID(uuid.NewString())
	}
	err := c.db.WithTxn(ctx, func(txn *badger.Txn) error {
		data, err := c.encode(rec)
		if err != nil {
			return err
		}
		return txn.Set(c.key(rec.GetID()), data)
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

func (c *badgerCollection[T, PT]) Replace(ctx context.Context, id string, rec PT) (PT, error) {
	var zero PT
	err := c.db.WithTxn(ctx, func(txn *badger.Txn) error {
		if _, err := txn.Get(c.key(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get %s/%s: %w", c.name, id, err)
		}
		rec.SetID(id)
		data, err := c.encode(rec)
		if err != nil {
			return err
		}
		return txn.Set(c.key(id), data)
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

func (c *badgerCollection[T, PT]) Delete(ctx context.Context, id string) error {
	return c.db.WithTxn(ctx, func(txn *badger.Txn) error {
		if _, err := txn.Get(c.key(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("get %s/%s: %w", c.name, id, err)
		}
		return txn.Delete(c.key(id))
	})
}

func (c *badgerCollection[T, PT]) Upsert(ctx context.Context, pred Predicate[PT], rec PT) (PT, error) {
	var zero PT
	err := c.db.WithTxn(ctx, func(txn *badger.Txn) error {
		var existing PT
		if err := c.scan(txn, func(r PT) bool {
			if pred(r) {
				existing = r
				return false
			}
			return true
		}); err != nil {
			return err
		}
		if existing != nil {
			// Keep the matched record's identity.
			rec.SetID(existing.GetID())
		} else if rec.GetID() == "" {
			rec.SetID(uuid.NewString())
		}
		data, err := c.encode(rec)
		if err != nil {
			return err
		}
		return txn.Set(c.key(rec.GetID()), data)
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// Compile-time interface compliance checks.
var (
	_ Store                       = (*BadgerStore)(nil)
	_ Collection[*datatypes.Task] = (*badgerCollection[datatypes.Task, *datatypes.Task])(nil)
)
