// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoal(t *testing.T) {
	router := setupRouter(t)

	t.Run("milestones round-trip through the API", func(t *testing.T) {
		var created map[string]any
		w := doJSON(t, router, http.MethodPost, "/goals", map[string]any{
			"title":       "Ship v1",
			"description": "First public release",
			"user_id":     "u1",
			"color":       "#1976d2",
			"milestones": []map[string]any{
				{"id": 1, "title": "Feature freeze", "completed": true},
				{"id": 2, "title": "Release notes", "dueDate": "2025-10-01"},
			},
		}, &created)

		require.Equal(t, http.StatusCreated, w.Code)
		milestones, ok := created["milestones"].([]any)
		require.True(t, ok)
		require.Len(t, milestones, 2)

		first := milestones[0].(map[string]any)
		assert.Equal(t, float64(1), first["id"])
		assert.Equal(t, true, first["completed"])
	})

	t.Run("goal without milestones serializes an empty list", func(t *testing.T) {
		var created map[string]any
		w := doJSON(t, router, http.MethodPost, "/goals", map[string]any{
			"title":   "Bare goal",
			"user_id": "u1",
		}, &created)

		require.Equal(t, http.StatusCreated, w.Code)
		milestones, ok := created["milestones"].([]any)
		require.True(t, ok, "milestones must be [], not null")
		assert.Empty(t, milestones)
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/goals", map[string]any{"user_id": "u1"}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGoalLifecycle(t *testing.T) {
	router := setupRouter(t)

	var created map[string]any
	w := doJSON(t, router, http.MethodPost, "/goals", map[string]any{
		"title":   "lifecycle",
		"user_id": "u1",
	}, &created)
	require.Equal(t, http.StatusCreated, w.Code)
	id := created["_id"].(string)

	var fetched map[string]any
	w = doJSON(t, router, http.MethodGet, "/goals/"+id, nil, &fetched)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lifecycle", fetched["title"])

	var updated map[string]any
	w = doJSON(t, router, http.MethodPut, "/goals/"+id, map[string]any{
		"title":     "lifecycle",
		"user_id":   "u1",
		"completed": true,
	}, &updated)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, updated["completed"])

	var deleted map[string]string
	w = doJSON(t, router, http.MethodDelete, "/goals/"+id, nil, &deleted)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Goal deleted successfully", deleted["message"])

	var nf map[string]string
	w = doJSON(t, router, http.MethodGet, "/goals/"+id, nil, &nf)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Goal not found", nf["error"])
}
