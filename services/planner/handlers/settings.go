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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/services"
)

// GetSettings returns the settings record for a user id, creating and
// persisting the defaults on first read.
func GetSettings(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := svc.GetOrCreate(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			writeServiceError(c, err, "Settings not found")
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PutSettings upserts the settings record for a user id.
func PutSettings(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings datatypes.Settings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		updated, err := svc.Put(c.Request.Context(), c.Param("user_id"), &settings)
		if err != nil {
			writeServiceError(c, err, "Settings not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
