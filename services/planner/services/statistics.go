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
	"sort"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
)

// StatisticsService computes the read-only per-user summary of tasks
// and goals. It never mutates state.
type StatisticsService struct {
	tasks store.Collection[*datatypes.Task]
	goals store.Collection[*datatypes.Goal]
}

// NewStatisticsService creates a statistics service over the given store.
func NewStatisticsService(s store.Store) *StatisticsService {
	return &StatisticsService{tasks: s.Tasks(), goals: s.Goals()}
}

// Summary aggregates one user's tasks and goals.
//
// Description:
//
//	Fetches the user's tasks, partitions them by completion and groups
//	them by category and by priority; tasks without a category count
//	under "Uncategorized", tasks without a priority under "medium".
//	Goals reduce to total/completed/in_progress. A user with no records
//	gets all-zero counts and empty (non-nil) group lists.
//
//	Group buckets are returned sorted by key so responses are
//	deterministic; clients must not rely on the order.
//
// Inputs:
//
//	ctx - Context for cancellation
//	userID - The user whose records are aggregated
//
// Outputs:
//
//	*datatypes.Statistics - The summary
//	error - Non-nil only on store failure
func (s *StatisticsService) Summary(ctx context.Context, userID string) (*datatypes.Statistics, error) {
	tasks, err := s.tasks.FindAll(ctx, func(t *datatypes.Task) bool { return t.UserID == userID })
	if err != nil {
		return nil, err
	}

	stats := &datatypes.Statistics{}
	stats.Tasks.Total = len(tasks)

	byCategory := make(map[string]int)
	byPriority := make(map[string]int)
	for _, t := range tasks {
		if t.Completed {
			stats.Tasks.Completed++
		}

		category := t.Category
		if category == "" {
			category = datatypes.DefaultCategory
		}
		byCategory[category]++

		priority := t.Priority
		if priority == "" {
			priority = datatypes.PriorityMedium
		}
		byPriority[priority]++
	}
	stats.Tasks.Pending = stats.Tasks.Total - stats.Tasks.Completed
	stats.Tasks.ByCategory = groupCounts(byCategory)
	stats.Tasks.ByPriority = groupCounts(byPriority)

	goals, err := s.goals.FindAll(ctx, func(g *datatypes.Goal) bool { return g.UserID == userID })
	if err != nil {
		return nil, err
	}
	stats.Goals.Total = len(goals)
	for _, g := range goals {
		if g.Completed {
			stats.Goals.Completed++
		}
	}
	stats.Goals.InProgress = stats.Goals.Total - stats.Goals.Completed

	return stats, nil
}

// groupCounts flattens a count map into sorted {key, count} pairs. The
// result is empty but non-nil for an empty map so it serializes as []
// rather than null.
func groupCounts(counts map[string]int) []datatypes.GroupCount {
	groups := make([]datatypes.GroupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, datatypes.GroupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}
