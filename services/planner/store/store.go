// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package store provides the document store abstraction behind the
// planner's entity services: a named collection of JSON records with
// list, lookup, insert, replace, delete and upsert operations.
//
// Two backends implement the contract:
//
//   - FileStore: each collection is one pretty-printed JSON array on
//     disk, rewritten atomically on every mutation.
//   - BadgerStore: each record is one document in an embedded BadgerDB,
//     keyed by "<collection>/<id>".
//
// Entity services are written against the Collection interface so the
// same service code runs unchanged on either backend (or on a test
// double).
//
// # Thread Safety
//
// Both backends are safe for concurrent use. The file backend holds a
// per-collection lock across each read-modify-write span, so concurrent
// mutations of the same collection serialize instead of losing updates.
package store

import (
	"context"
	"time"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
)

// Entity is the record contract the store requires of every collection
// element. All planner entities satisfy it through datatypes.Meta.
//
// Identifiers are assigned by the store on insert and are opaque strings
// to every caller; the store never exposes a backend-native id type.
type Entity interface {
	GetID() string
	SetID(id string)
	GetCreatedAt() time.Time
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}

// Predicate selects records during FindOne, FindAll and Upsert.
// Implementations must be pure field checks; they are called while the
// collection lock is held.
type Predicate[T Entity] func(T) bool

// Collection is one named set of records of a single entity type.
//
// Description:
//
//	All operations take a context for cancellation. Lookup operations
//	return ErrNotFound when nothing matches; they never return a nil
//	record alongside a nil error.
//
// Operations:
//
//	List     - all records. Order is insertion order for the file
//	           backend and key order for BadgerDB; callers must not
//	           rely on either.
//	FindByID - record by identifier.
//	FindOne  - first record matching the predicate.
//	FindAll  - every record matching the predicate.
//	Insert   - persists the record, assigning a fresh identifier if the
//	           record carries none, and returns the stored form.
//	Replace  - overwrites the record with the given id in full while
//	           preserving that id. ErrNotFound if the id is absent.
//	Delete   - removes the record with the given id. ErrNotFound if the
//	           id is absent.
//	Upsert   - replaces the first record matching the predicate, or
//	           inserts the record if none matches.
type Collection[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (T, error)
	FindOne(ctx context.Context, pred Predicate[T]) (T, error)
	FindAll(ctx context.Context, pred Predicate[T]) ([]T, error)
	Insert(ctx context.Context, rec T) (T, error)
	Replace(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, pred Predicate[T], rec T) (T, error)
}

// Store bundles the four planner collections behind one handle.
//
// Close releases backend resources. For the file backend it is a no-op;
// for BadgerDB it stops garbage collection and closes the database.
type Store interface {
	Tasks() Collection[*datatypes.Task]
	Goals() Collection[*datatypes.Goal]
	Users() Collection[*datatypes.User]
	Settings() Collection[*datatypes.Settings]
	Close() error
}

// Collection names shared by both backends. The file backend derives
// file names from these ("tasks" -> "tasks.json"); BadgerDB uses them
// as key prefixes.
const (
	CollectionTasks    = "tasks"
	CollectionGoals    = "goals"
	CollectionUsers    = "users"
	CollectionSettings = "settings"
)
