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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
)

// FileStore keeps each collection as one pretty-printed JSON array file
// in a dedicated data directory.
//
// # Capabilities
//
//   - Zero external processes; the data directory is the whole database
//   - Human-readable, diffable on-disk state
//   - Atomic full-file overwrite on every mutation (temp file + rename),
//     so readers never observe a partially written collection
//
// # Thread Safety
//
// Each collection carries its own RWMutex held across the full
// read-modify-write span of a mutation. Two concurrent writers to the
// same collection therefore serialize; the lost-update race of a naive
// read-then-write cycle cannot occur within one process. The lock does
// not protect against a second process writing the same files.
type FileStore struct {
	dir      string
	tasks    *fileCollection[*datatypes.Task]
	goals    *fileCollection[*datatypes.Goal]
	users    *fileCollection[*datatypes.User]
	settings *fileCollection[*datatypes.Settings]
}

// NewFileStore creates a file-backed store rooted at dir.
//
// Description:
//
//	Creates the data directory if it does not exist. Collection files
//	are created lazily on first write; a missing or empty file reads as
//	an empty collection.
//
// Inputs:
//
//	dir - Directory for collection files. Must be non-empty.
//
// Outputs:
//
//	*FileStore - Ready-to-use store
//	error - Non-nil if dir is empty or cannot be created
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &FileStore{
		dir:      dir,
		tasks:    newFileCollection[*datatypes.Task](dir, CollectionTasks),
		goals:    newFileCollection[*datatypes.Goal](dir, CollectionGoals),
		users:    newFileCollection[*datatypes.User](dir, CollectionUsers),
		settings: newFileCollection[*datatypes.Settings](dir, CollectionSettings),
	}, nil
}

// Tasks returns the tasks collection.
func (s *FileStore) Tasks() Collection[*datatypes.Task] { return s.tasks }

// Goals returns the goals collection.
func (s *FileStore) Goals() Collection[*datatypes.Goal] { return s.goals }

// Users returns the users collection.
func (s *FileStore) Users() Collection[*datatypes.User] { return s.users }

// Settings returns the settings collection.
func (s *FileStore) Settings() Collection[*datatypes.Settings] { return s.settings }

// Close is a no-op for the file backend; every mutation is already
// flushed to disk before it returns.
func (s *FileStore) Close() error { return nil }

// Dir returns the data directory path.
func (s *FileStore) Dir() string { return s.dir }

// fileCollection is one JSON-array-on-disk collection.
type fileCollection[T Entity] struct {
	path string
	mu   sync.RWMutex
}

func newFileCollection[T Entity](dir, name string) *fileCollection[T] {
	return &fileCollection[T]{path: filepath.Join(dir, name+".json")}
}

// readAll loads the whole collection into memory. A missing or empty
// file is an empty collection, not an error.
func (c *fileCollection[T]) readAll() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", c.path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", c.path, err)
	}
	return records, nil
}

// writeAll rewrites the whole collection atomically (temp file +
// rename). Pretty-printed so the data directory stays readable.
func (c *fileCollection[T]) writeAll(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.path, err)
	}
	tempPath := c.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0640); err != nil {
		return fmt.Errorf("write collection %s: %w", c.path, err)
	}
	if err := os.Rename(tempPath, c.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("finalize collection %s: %w", c.path, err)
	}
	return nil
}

func (c *fileCollection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.readAll()
}

func (c *fileCollection[T]) FindByID(ctx context.Context, id string) (T, error) {
	return c.FindOne(ctx, func(rec T) bool { return rec.GetID() == id })
}

func (c *fileCollection[T]) FindOne(ctx context.Context, pred Predicate[T]) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	records, err := c.readAll()
	if err != nil {
		return zero, err
	}
	for _, rec := range records {
		if pred(rec) {
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

func (c *fileCollection[T]) FindAll(ctx context.Context, pred Predicate[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	records, err := c.readAll()
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func (c *fileCollection[T]) Insert(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.readAll()
	if err != nil {
		return zero, err
	}
	if rec.GetID() == "" {
		rec.SetID(uuid.NewString())
	}
	records = append(records, rec)
	if err := c.writeAll(records); err != nil {
		return zero, err
	}
	return rec, nil
}

func (c *fileCollection[T]) Replace(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.readAll()
	if err != nil {
		return zero, err
	}
	for i, existing := range records {
		if existing.GetID() == id {
			rec.SetID(id)
			records[i] = rec
			if err := c.writeAll(records); err != nil {
				return zero, err
			}
			return rec, nil
		}
	}
	return zero, ErrNotFound
}

func (c *fileCollection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.readAll()
	if err != nil {
		return err
	}
	remaining := make([]T, 0, len(records))
	for _, rec := range records {
		if rec.GetID() != id {
			remaining = append(remaining, rec)
		}
	}
	if len(remaining) == len(records) {
		return ErrNotFound
	}
	return c.writeAll(remaining)
}

func (c *fileCollection[T]) Upsert(ctx context.Context, pred Predicate[T], rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.readAll()
	if err != nil {
		return zero, err
	}
	for i, existing := range records {
		if pred(existing) {
			// Keep the matched record's identity.
			rec.SetID(existing.GetID())
			records[i] = rec
			if err := c.writeAll(records); err != nil {
				return zero, err
			}
			return rec, nil
		}
	}
	if rec.GetID() == "" {
		rec.SetID(uuid.NewString())
	}
	records = append(records, rec)
	if err := c.writeAll(records); err != nil {
		return zero, err
	}
	return rec, nil
}

// Compile-time interface compliance checks.
var (
	_ Store                           = (*FileStore)(nil)
	_ Collection[*datatypes.Task]     = (*fileCollection[*datatypes.Task])(nil)
	_ Collection[*datatypes.Settings] = (*fileCollection[*datatypes.Settings])(nil)
)
