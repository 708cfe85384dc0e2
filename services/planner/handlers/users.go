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

// ListUsers returns every user profile.
func ListUsers(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, err, "User not found")
			return
		}
		if users == nil {
			users = []*datatypes.User{}
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetUser returns one user by id, falling back to an email match.
func GetUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeServiceError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// CreateUser validates and persists a new user profile, rejecting
// duplicate emails.
func CreateUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user datatypes.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		created, err := svc.Create(c.Request.Context(), &user)
		if err != nil {
			writeServiceError(c, err, "User not found")
			return
		}
		slog.Info("Created user", "user_id", created.ID)
		c.JSON(http.StatusCreated, created)
	}
}

// ReplaceUser overwrites an existing user profile in full.
func ReplaceUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user datatypes.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		updated, err := svc.Replace(c.Request.Context(), c.Param("id"), &user)
		if err != nil {
			writeServiceError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteUser removes one user profile by id.
func DeleteUser(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeServiceError(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
