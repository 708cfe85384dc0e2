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

// ListGoals returns every goal.
func ListGoals(svc *services.GoalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err, "Goal not found")
			return
		}
		if goals == nil {
			goals = []*datatypes.Goal{}
		}
		c.JSON(http.StatusOK, goals)
	}
}

// GetGoal returns one goal by id.
func GetGoal(svc *services.GoalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		goal, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err, "Goal not found")
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

// CreateGoal validates and persists a new goal.
func CreateGoal(svc *services.GoalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var goal datatypes.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		created, err := svc.Create(c.Request.Context(), &goal)
		if err != nil {
			writeServiceError(c, err, "Goal not found")
			return
		}
		slog.Info("Created goal", "goal_id", created.ID, "milestones", len(created.Milestones))
		c.JSON(http.StatusCreated, created)
	}
}

// ReplaceGoal overwrites an existing goal (milestones included) in full.
func ReplaceGoal(svc *services.GoalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var goal datatypes.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		updated, err := svc.Replace(c.Request.Context(), c.Param("id"), &goal)
		if err != nil {
			writeServiceError(c, err, "Goal not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteGoal removes one goal by id.
func DeleteGoal(svc *services.GoalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeServiceError(c, err, "Goal not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
	}
}
