// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes defines the entity records served by the planner
// service: tasks, goals, users and per-user settings.
//
// The JSON field names match the wire format consumed by the Momentum
// frontend. Record identifiers serialize as plain strings under "_id"
// regardless of the backing store.
package datatypes

import "time"

// Task priorities. Records created through the API may carry any of the
// three values; the statistics aggregator treats a missing priority as
// PriorityMedium.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultCategory is the bucket used by the statistics aggregator for
// tasks that carry no category.
const DefaultCategory = "Uncategorized"

// Meta carries the identity and timestamp fields shared by every record.
//
// The ID is assigned by the document store on insert and is immutable
// afterwards. CreatedAt is set once at creation time; UpdatedAt is
// refreshed by the owning service on every successful mutation.
type Meta struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the record identifier.
func (m *Meta) GetID() string { return m.ID }

// SetID sets the record identifier. Called by the document store on
// insert; services never invent identifiers.
func (m *Meta) SetID(id string) { m.ID = id }

// GetCreatedAt returns the creation timestamp.
func (m *Meta) GetCreatedAt() time.Time { return m.CreatedAt }

// SetCreatedAt sets the creation timestamp.
func (m *Meta) SetCreatedAt(t time.Time) { m.CreatedAt = t }

// SetUpdatedAt sets the last-modification timestamp.
func (m *Meta) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// Task is a single to-do item owned by a user.
type Task struct {
	Meta
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
	Category  string `json:"category,omitempty"`
	Priority  string `json:"priority,omitempty"`
	DueDate   string `json:"dueDate,omitempty"`
	UserID    string `json:"user_id"`
}

// Milestone is a step toward a goal. Milestones are owned exclusively by
// their parent Goal and have no independent lifecycle; their numeric IDs
// are unique only within that goal.
type Milestone struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
}

// Goal is a longer-term objective with an ordered list of milestones.
type Goal struct {
	Meta
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description,omitempty"`
	DueDate     string      `json:"dueDate,omitempty"`
	Color       string      `json:"color,omitempty"`
	Category    string      `json:"category,omitempty"`
	Completed   bool        `json:"completed"`
	UserID      string      `json:"user_id"`
	Milestones  []Milestone `json:"milestones"`
}

// User is a profile record. Email is a uniqueness key among users.
type User struct {
	Meta
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Occupation string   `json:"occupation,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}

// Settings holds one user's preferences. There is logically one Settings
// record per user id, enforced by find-or-create rather than a store
// constraint.
type Settings struct {
	Meta
	UserID        string `json:"user_id"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	AutoSave      bool   `json:"autoSave"`
	DataSync      bool   `json:"dataSync"`
}

// DefaultSettings returns the settings record synthesized on first read
// for a user that has none.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:        userID,
		Theme:         "light",
		Notifications: true,
		AutoSave:      true,
		DataSync:      false,
	}
}

// GroupCount is one bucket of a statistics group-by breakdown.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TaskStats summarizes one user's tasks.
type TaskStats struct {
	Total      int          `json:"total"`
	Completed  int          `json:"completed"`
	Pending    int          `json:"pending"`
	ByCategory []GroupCount `json:"by_category"`
	ByPriority []GroupCount `json:"by_priority"`
}

// GoalStats summarizes one user's goals.
type GoalStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
}

// Statistics is the response body of the statistics endpoint.
type Statistics struct {
	Tasks TaskStats `json:"tasks"`
	Goals GoalStats `json:"goals"`
}
