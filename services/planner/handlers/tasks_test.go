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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Empty(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/tasks", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCreateTask(t *testing.T) {
	router := setupRouter(t)

	t.Run("valid task returns 201 with assigned id", func(t *testing.T) {
		var created map[string]any
		w := doJSON(t, router, http.MethodPost, "/tasks", map[string]any{
			"title":    "write report",
			"user_id":  "u1",
			"priority": "high",
			"dueDate":  "2025-09-30",
		}, &created)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.NotEmpty(t, created["_id"])
		assert.Equal(t, "write report", created["title"])
		assert.Equal(t, "2025-09-30", created["dueDate"])
		assert.NotEmpty(t, created["created_at"])
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		var body map[string]string
		w := doJSON(t, router, http.MethodPost, "/tasks", map[string]any{"user_id": "u1"}, &body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body["error"], "title is required")
	})
}

func TestGetTask(t *testing.T) {
	router := setupRouter(t)

	var created map[string]any
	w := doJSON(t, router, http.MethodPost, "/tasks", map[string]any{"title": "findable"}, &created)
	require.Equal(t, http.StatusCreated, w.Code)
	id := created["_id"].(string)

	t.Run("existing id", func(t *testing.T) {
		var fetched map[string]any
		w := doJSON(t, router, http.MethodGet, "/tasks/"+id, nil, &fetched)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "findable", fetched["title"])
	})

	t.Run("missing id returns entity-specific 404", func(t *testing.T) {
		var body map[string]string
		w := doJSON(t, router, http.MethodGet, "/tasks/does-not-exist", nil, &body)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found", body["error"])
	})
}

func TestReplaceTask(t *testing.T) {
	router := setupRouter(t)

	var created map[string]any
	doJSON(t, router, http.MethodPost, "/tasks", map[string]any{"title": "before"}, &created)
	id := created["_id"].(string)

	t.Run("overwrites the record", func(t *testing.T) {
		var updated map[string]any
		w := doJSON(t, router, http.MethodPut, "/tasks/"+id, map[string]any{
			"title":     "after",
			"completed": true,
		}, &updated)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, updated["_id"])
		assert.Equal(t, "after", updated["title"])
		assert.Equal(t, true, updated["completed"])
	})

	t.Run("missing id returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/tasks/nope", map[string]any{"title": "x"}, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteTask(t *testing.T) {
	router := setupRouter(t)

	var created map[string]any
	doJSON(t, router, http.MethodPost, "/tasks", map[string]any{"title": "doomed"}, &created)
	id := created["_id"].(string)

	t.Run("returns confirmation message", func(t *testing.T) {
		var body map[string]string
		w := doJSON(t, router, http.MethodDelete, "/tasks/"+id, nil, &body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Task deleted successfully", body["message"])
	})

	t.Run("second delete returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/tasks/"+id, nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
