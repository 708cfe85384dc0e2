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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
)

// newTestStore backs the service tests with a file store in a temp
// directory. The services only see the store.Store interface, so the
// backend choice is immaterial here.
func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestTaskService_Create(t *testing.T) {
	svc := NewTaskService(newTestStore(t))
	ctx := context.Background()

	t.Run("assigns id and symmetric timestamps", func(t *testing.T) {
		created, err := svc.Create(ctx, &datatypes.Task{Title: "write report", UserID: "u1"})
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	})

	t.Run("discards client-supplied id", func(t *testing.T) {
		task := &datatypes.Task{Title: "sneaky"}
		task.SetID("attacker-chosen")

		created, err := svc.Create(ctx, task)
		require.NoError(t, err)
		assert.NotEqual(t, "attacker-chosen", created.ID)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &datatypes.Task{UserID: "u1"})
		require.ErrorIs(t, err, ErrValidation)
		assert.True(t, strings.Contains(err.Error(), "title is required"))
	})
}

func TestTaskService_Get(t *testing.T) {
	svc := NewTaskService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &datatypes.Task{Title: "findable"})
	require.NoError(t, err)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "findable", found.Title)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTaskService_Replace(t *testing.T) {
	svc := NewTaskService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &datatypes.Task{Title: "before", Priority: datatypes.PriorityLow})
	require.NoError(t, err)

	t.Run("preserves creation time, refreshes update time", func(t *testing.T) {
		time.Sleep(5 * time.Millisecond)

		updated, err := svc.Replace(ctx, created.ID, &datatypes.Task{
			Title:     "after",
			Completed: true,
			Priority:  datatypes.PriorityHigh,
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
		assert.Equal(t, datatypes.PriorityHigh, updated.Priority)
	})

	t.Run("missing id returns not found", func(t *testing.T) {
		_, err := svc.Replace(ctx, "missing", &datatypes.Task{Title: "x"})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("invalid body is rejected", func(t *testing.T) {
		_, err := svc.Replace(ctx, created.ID, &datatypes.Task{})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestTaskService_Delete(t *testing.T) {
	svc := NewTaskService(newTestStore(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &datatypes.Task{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), store.ErrNotFound)
}

func TestTaskService_List(t *testing.T) {
	svc := NewTaskService(newTestStore(t))
	ctx := context.Background()

	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = svc.Create(ctx, &datatypes.Task{Title: "one"})
	require.NoError(t, err)

	tasks, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
