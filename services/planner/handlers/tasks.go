// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/services"
)

// ListTasks returns every task.
func ListTasks(svc *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err, "Task not found")
			return
		}
		if tasks == nil {
			tasks = []*datatypes.Task{}
		}
		c.JSON(http.StatusOK, tasks)
	}
}

// GetTask returns one task by id.
func GetTask(svc *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err, "Task not found")
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

// CreateTask validates and persists a new task.
func CreateTask(svc *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var task datatypes.Task
		if err := c.ShouldBindJSON(&task); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		created, err := svc.Create(c.Request.Context(), &task)
		if err != nil {
			writeServiceError(c, err, "Task not found")
			return
		}
		slog.Info("Created task", "task_id", created.ID, "user_id", created.UserID)
		c.JSON(http.StatusCreated, created)
	}
}

// ReplaceTask overwrites an existing task in full.
func ReplaceTask(svc *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var task datatypes.Task
		if err := c.ShouldBindJSON(&task); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		updated, err := svc.Replace(c.Request.Context(), c.Param("id"), &task)
		if err != nil {
			writeServiceError(c, err, "Task not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteTask removes one task by id.
func DeleteTask(svc *services.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeServiceError(c, err, "Task not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
	}
}
