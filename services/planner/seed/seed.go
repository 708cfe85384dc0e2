// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package seed populates empty collections with example records on
// first run: three sample tasks, one default user, two sample goals and
// one default settings record.
//
// Seeding is idempotent: a collection is only touched when it is empty,
// so re-running after the first start is a no-op and user data is never
// overwritten.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
)

// DefaultUserID is the identifier of the seeded profile. The frontend
// operates on this single user's data until real accounts exist.
const DefaultUserID = "default_user"

// Seeder writes default records into empty collections.
type Seeder struct {
	store store.Store
}

// NewSeeder creates a seeder over the given store.
func NewSeeder(s store.Store) *Seeder {
	return &Seeder{store: s}
}

// Run seeds every empty collection.
//
// Description:
//
//	Checks each collection in turn and inserts the fixed defaults when
//	it holds no records. Collections with existing data are left
//	untouched, so Run can be called on every startup.
//
// Inputs:
//
//	ctx - Context for cancellation
//
// Outputs:
//
//	error - Non-nil if any read or insert fails; seeding stops at the
//	        first failure
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedTasks(ctx); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.seedGoals(ctx); err != nil {
		return fmt.Errorf("seed goals: %w", err)
	}
	if err := s.seedSettings(ctx); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

func (s *Seeder) seedTasks(ctx context.Context) error {
	existing, err := s.store.Tasks().List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	tasks := []*datatypes.Task{
		{
			Title:    "Complete project proposal",
			Category: "Work",
			Priority: datatypes.PriorityHigh,
			DueDate:  "2025-04-20",
			UserID:   DefaultUserID,
		},
		{
			Title:     "Buy groceries",
			Completed: true,
			Category:  "Personal",
			Priority:  datatypes.PriorityMedium,
			DueDate:   "2025-04-15",
			UserID:    DefaultUserID,
		},
		{
			Title:    "Gym workout",
			Category: "Health",
			Priority: datatypes.PriorityLow,
			DueDate:  "2025-04-16",
			UserID:   DefaultUserID,
		},
	}
	for _, t := range tasks {
		t.SetCreatedAt(now)
		t.SetUpdatedAt(now)
		if _, err := s.store.Tasks().Insert(ctx, t); err != nil {
			return err
		}
	}
	slog.Info("Seeded sample tasks", "count", len(tasks))
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	existing, err := s.store.Users().List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	user := &datatypes.User{
		Name:       "Swaraj Patil",
		Email:      "swarajpatil1@gmail.com",
		Phone:      "+919226589060",
		Location:   "Mumbai, India",
		Occupation: "Software Developer",
		Bio:        "Task management enthusiast and productivity expert.",
		Skills:     []string{"Task Management", "Project Planning", "Team Coordination"},
	}
	// The default profile keeps a well-known id so tasks and goals can
	// reference it before any real signup happens.
	user.SetID(DefaultUserID)
	user.SetCreatedAt(now)
	user.SetUpdatedAt(now)
	if _, err := s.store.Users().Insert(ctx, user); err != nil {
		return err
	}
	slog.Info("Seeded default user", "user_id", DefaultUserID)
	return nil
}

func (s *Seeder) seedGoals(ctx context.Context) error {
	existing, err := s.store.Goals().List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	goals := []*datatypes.Goal{
		{
			Title:       "Complete Project Milestone",
			Description: "Finish the first phase of the project including all core features",
			DueDate:     "2025-04-30",
			Color:       "#1976d2",
			Category:    "Career",
			UserID:      DefaultUserID,
			Milestones: []datatypes.Milestone{
				{ID: 101, Title: "Finish requirements gathering", Completed: true, DueDate: "2025-04-18"},
				{ID: 102, Title: "Complete UI design", DueDate: "2025-04-23"},
			},
		},
		{
			Title:       "Improve Fitness",
			Description: "Work on improving overall fitness and health",
			DueDate:     "2025-07-15",
			Color:       "#4caf50",
			Category:    "Health",
			UserID:      DefaultUserID,
			Milestones: []datatypes.Milestone{
				{ID: 201, Title: "Start regular workout routine", Completed: true, DueDate: "2025-04-23"},
				{ID: 202, Title: "Run 5km without stopping", DueDate: "2025-05-15"},
			},
		},
	}
	for _, g := range goals {
		g.SetCreatedAt(now)
		g.SetUpdatedAt(now)
		if _, err := s.store.Goals().Insert(ctx, g); err != nil {
			return err
		}
	}
	slog.Info("Seeded sample goals", "count", len(goals))
	return nil
}

func (s *Seeder) seedSettings(ctx context.Context) error {
	existing, err := s.store.Settings().List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	settings := datatypes.DefaultSettings(DefaultUserID)
	settings.SetCreatedAt(now)
	settings.SetUpdatedAt(now)
	if _, err := s.store.Settings().Insert(ctx, settings); err != nil {
		return err
	}
	slog.Info("Seeded default settings", "user_id", DefaultUserID)
	return nil
}
