// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/MomentumLocal/services/planner/handlers"
	"github.com/AleutianAI/MomentumLocal/services/planner/services"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
)

// SetupRoutes registers every planner endpoint on the router.
func SetupRoutes(router *gin.Engine, s store.Store) {
	taskSvc := services.NewTaskService(s)
	goalSvc := services.NewGoalService(s)
	userSvc := services.NewUserService(s)
	settingsSvc := services.NewSettingsService(s)
	statsSvc := services.NewStatisticsService(s)

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	tasks := router.Group("/tasks")
	{
		tasks.GET("", handlers.ListTasks(taskSvc))
		tasks.POST("", handlers.CreateTask(taskSvc))
		tasks.GET("/:id", handlers.GetTask(taskSvc))
		tasks.PUT("/:id", handlers.ReplaceTask(taskSvc))
		tasks.DELETE("/:id", handlers.DeleteTask(taskSvc))
	}

	goals := router.Group("/goals")
	{
		goals.GET("", handlers.ListGoals(goalSvc))
		goals.POST("", handlers.CreateGoal(goalSvc))
		goals.GET("/:id", handlers.GetGoal(goalSvc))
		goals.PUT("/:id", handlers.ReplaceGoal(goalSvc))
		goals.DELETE("/:id", handlers.DeleteGoal(goalSvc))
	}

	users := router.Group("/users")
	{
		users.GET("", handlers.ListUsers(userSvc))
		users.POST("", handlers.CreateUser(userSvc))
		users.GET("/:id", handlers.GetUser(userSvc))
		users.PUT("/:id", handlers.ReplaceUser(userSvc))
		users.DELETE("/:id", handlers.DeleteUser(userSvc))
	}

	settings := router.Group("/settings")
	{
		settings.GET("/:user_id", handlers.GetSettings(settingsSvc))
		settings.PUT("/:user_id", handlers.PutSettings(settingsSvc))
	}

	router.GET("/statistics/:user_id", handlers.GetStatistics(statsSvc))
}
