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
	"errors"
	"time"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
)

// SettingsService maintains the logically 1:1 relation between a user
// id and its settings record. The relation is enforced by
// find-or-create and upsert rather than a store constraint.
type SettingsService struct {
	settings store.Collection[*datatypes.Settings]
}

// NewSettingsService creates a settings service over the given store.
func NewSettingsService(s store.Store) *SettingsService {
	return &SettingsService{settings: s.Settings()}
}

// GetOrCreate returns the settings record for the given user id,
// synthesizing and persisting a default one when none exists.
//
// Description:
//
//	This is the read-triggered write behind the settings GET endpoint:
//	the first read for a user creates exactly one default record
//	(theme "light", notifications on, auto-save on, data sync off),
//	and every later read returns that same record and identifier.
//
// Inputs:
//
//	ctx - Context for cancellation
//	userID - Owning user id. Opaque; no users-collection lookup happens.
//
// Outputs:
//
//	*datatypes.Settings - The existing or freshly persisted record
//	error - Non-nil only on store failure
func (s *SettingsService) GetOrCreate(ctx context.Context, userID string) (*datatypes.Settings, error) {
	existing, err := s.settings.FindOne(ctx, byUserID(userID))
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	defaults := datatypes.DefaultSettings(userID)
	now := time.Now().UTC()
	defaults.SetCreatedAt(now)
	defaults.SetUpdatedAt(now)
	return s.settings.Insert(ctx, defaults)
}

// Put upserts the settings record keyed by user id: an existing record
// is replaced in full keeping its identifier and CreatedAt; otherwise a
// new record is inserted.
func (s *SettingsService) Put(ctx context.Context, userID string, settings *datatypes.Settings) (*datatypes.Settings, error) {
	settings.UserID = userID
	now := time.Now().UTC()

	existing, err := s.settings.FindOne(ctx, byUserID(userID))
	switch {
	case err == nil:
		settings.SetCreatedAt(existing.GetCreatedAt())
	case errors.Is(err, store.ErrNotFound):
		settings.SetID("")
		settings.SetCreatedAt(now)
	default:
		return nil, err
	}
	settings.SetUpdatedAt(now)

	return s.settings.Upsert(ctx, byUserID(userID), settings)
}

// byUserID matches the settings record owned by the given user id.
func byUserID(userID string) store.Predicate[*datatypes.Settings] {
	return func(rec *datatypes.Settings) bool { return rec.UserID == userID }
}
