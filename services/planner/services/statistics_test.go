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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
)

func TestStatisticsService_Summary_NoData(t *testing.T) {
	svc := NewStatisticsService(newTestStore(t))

	stats, err := svc.Summary(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Tasks.Total)
	assert.Equal(t, 0, stats.Tasks.Completed)
	assert.Equal(t, 0, stats.Tasks.Pending)
	assert.NotNil(t, stats.Tasks.ByCategory)
	assert.Empty(t, stats.Tasks.ByCategory)
	assert.NotNil(t, stats.Tasks.ByPriority)
	assert.Empty(t, stats.Tasks.ByPriority)
	assert.Equal(t, 0, stats.Goals.Total)
}

func TestStatisticsService_Summary_TaskBreakdown(t *testing.T) {
	st := newTestStore(t)
	svc := NewStatisticsService(st)
	ctx := context.Background()

	seedTasks := []*datatypes.Task{
		{Title: "t1", UserID: "u1", Category: "Work", Priority: datatypes.PriorityHigh, Completed: true},
		{Title: "t2", UserID: "u1", Category: "Work", Priority: datatypes.PriorityLow},
		{Title: "t3", UserID: "u1", Category: "Health", Priority: datatypes.PriorityLow},
		{Title: "t4", UserID: "u1"}, // no category, no priority
		{Title: "other", UserID: "u2", Category: "Work"},
	}
	for _, task := range seedTasks {
		_, err := st.Tasks().Insert(ctx, task)
		require.NoError(t, err)
	}

	stats, err := svc.Summary(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Tasks.Total)
	assert.Equal(t, 1, stats.Tasks.Completed)
	assert.Equal(t, 3, stats.Tasks.Pending)

	// Buckets come back sorted by key.
	assert.Equal(t, []datatypes.GroupCount{
		{Key: "Health", Count: 1},
		{Key: datatypes.DefaultCategory, Count: 1},
		{Key: "Work", Count: 2},
	}, stats.Tasks.ByCategory)

	assert.Equal(t, []datatypes.GroupCount{
		{Key: datatypes.PriorityHigh, Count: 1},
		{Key: datatypes.PriorityLow, Count: 2},
		{Key: datatypes.PriorityMedium, Count: 1},
	}, stats.Tasks.ByPriority)
}

func TestStatisticsService_Summary_Goals(t *testing.T) {
	st := newTestStore(t)
	svc := NewStatisticsService(st)
	ctx := context.Background()

	goals := []*datatypes.Goal{
		{Title: "done", UserID: "u1", Completed: true},
		{Title: "going", UserID: "u1"},
		{Title: "also going", UserID: "u1"},
		{Title: "someone else's", UserID: "u2"},
	}
	for _, g := range goals {
		_, err := st.Goals().Insert(ctx, g)
		require.NoError(t, err)
	}

	stats, err := svc.Summary(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Goals.Total)
	assert.Equal(t, 1, stats.Goals.Completed)
	assert.Equal(t, 2, stats.Goals.InProgress)
}

func TestStatisticsService_Summary_ReadOnly(t *testing.T) {
	st := newTestStore(t)
	svc := NewStatisticsService(st)
	ctx := context.Background()

	_, err := st.Tasks().Insert(ctx, &datatypes.Task{Title: "t", UserID: "u1"})
	require.NoError(t, err)

	_, err = svc.Summary(ctx, "u1")
	require.NoError(t, err)

	tasks, err := st.Tasks().List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t", tasks[0].Title)
	_, err = st.Settings().FindOne(ctx, func(*datatypes.Settings) bool { return true })
	assert.ErrorIs(t, err, store.ErrNotFound)
}
