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

// GoalService provides validated CRUD over the goals collection.
// Milestones travel inside their parent goal; replacing a goal replaces
// its whole milestone list.
type GoalService struct {
	goals store.Collection[*datatypes.Goal]
}

// NewGoalService creates a goal service over the given store.
func NewGoalService(s store.Store) *GoalService {
	return &GoalService{goals: s.Goals()}
}

// List returns every goal in the collection.
func (s *GoalService) List(ctx context.Context) ([]*datatypes.Goal, error) {
	return s.goals.List(ctx)
}

// Get returns the goal with the given id, or store.ErrNotFound.
func (s *GoalService) Get(ctx context.Context, id string) (*datatypes.Goal, error) {
	return s.goals.FindByID(ctx, id)
}

// Create validates and persists a new goal. The store assigns the
// identifier; on success CreatedAt == UpdatedAt.
func (s *GoalService) Create(ctx context.Context, goal *datatypes.Goal) (*datatypes.Goal, error) {
	if err := checkRequired(goal); err != nil {
		return nil, err
	}
	goal.SetID("")
	if goal.Milestones == nil {
		goal.Milestones = []datatypes.Milestone{}
	}
	now := time.Now().UTC()
	goal.SetCreatedAt(now)
	goal.SetUpdatedAt(now)
	return s.goals.Insert(ctx, goal)
}

// Replace overwrites the goal with the given id in full, preserving its
// identifier and original CreatedAt and refreshing UpdatedAt.
func (s *GoalService) Replace(ctx context.Context, id string, goal *datatypes.Goal) (*datatypes.Goal, error) {
	if err := checkRequired(goal); err != nil {
		return nil, err
	}
	existing, err := s.goals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.Milestones == nil {
		goal.Milestones = []datatypes.Milestone{}
	}
	goal.SetCreatedAt(existing.GetCreatedAt())
	goal.SetUpdatedAt(time.Now().UTC())
	return s.goals.Replace(ctx, id, goal)
}

// Delete removes the goal (and with it all its milestones), or returns
// store.ErrNotFound.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
