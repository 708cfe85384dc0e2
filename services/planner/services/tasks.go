// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package services

import (
	"context"
	"time"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
)

// TaskService provides validated CRUD over the tasks collection.
type TaskService struct {
	tasks store.Collection[*datatypes.Task]
}

// NewTaskService creates a task service over the given store.
func NewTaskService(s store.Store) *TaskService {
	return &TaskService{tasks: s.Tasks()}
}

// List returns every task in the collection.
func (s *TaskService) List(ctx context.Context) ([]*datatypes.Task, error) {
	return s.tasks.List(ctx)
}

// Get returns the task with the given id, or store.ErrNotFound.
func (s *TaskService) Get(ctx context.Context, id string) (*datatypes.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

// Create validates and persists a new task.
//
// The store assigns the identifier; any client-supplied id is discarded.
// On success the returned record has CreatedAt == UpdatedAt.
func (s *TaskService) Create(ctx context.Context, task *datatypes.Task) (*datatypes.Task, error) {
	if err := checkRequired(task); err != nil {
		return nil, err
	}
	task.SetID("")
	now := time.Now().UTC()
	task.SetCreatedAt(now)
	task.SetUpdatedAt(now)
	return s.tasks.Insert(ctx, task)
}

// Replace overwrites the task with the given id in full, preserving its
// identifier and original CreatedAt and refreshing UpdatedAt.
func (s *TaskService) Replace(ctx context.Context, id string, task *datatypes.Task) (*datatypes.Task, error) {
	if err := checkRequired(task); err != nil {
		return nil, err
	}
	existing, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.SetCreatedAt(existing.GetCreatedAt())
	task.SetUpdatedAt(time.Now().UTC())
	return s.tasks.Replace(ctx, id, task)
}

// Delete removes the task with the given id, or returns
// store.ErrNotFound.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
