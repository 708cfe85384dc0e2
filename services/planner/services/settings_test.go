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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/MomentumLocal/services/planner/datatypes"
)

func TestSettingsService_GetOrCreate(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	t.Run("first read synthesizes defaults", func(t *testing.T) {
		settings, err := svc.GetOrCreate(ctx, "u1")
		require.NoError(t, err)

		assert.NotEmpty(t, settings.ID)
		assert.Equal(t, "u1", settings.UserID)
		assert.Equal(t, "light", settings.Theme)
		assert.True(t, settings.Notifications)
		assert.True(t, settings.AutoSave)
		assert.False(t, settings.DataSync)
		assert.False(t, settings.CreatedAt.IsZero())
	})

	t.Run("later reads return the same record", func(t *testing.T) {
		first, err := svc.GetOrCreate(ctx, "u2")
		require.NoError(t, err)

		second, err := svc.GetOrCreate(ctx, "u2")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("users get independent records", func(t *testing.T) {
		a, err := svc.GetOrCreate(ctx, "alice")
		require.NoError(t, err)
		b, err := svc.GetOrCreate(ctx, "bob")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestSettingsService_Put(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	t.Run("updates an existing record in place", func(t *testing.T) {
		existing, err := svc.GetOrCreate(ctx, "u1")
		require.NoError(t, err)

		update := &datatypes.Settings{Theme: "dark", Notifications: false, AutoSave: true}
		saved, err := svc.Put(ctx, "u1", update)
		require.NoError(t, err)

		assert.Equal(t, existing.ID, saved.ID)
		assert.Equal(t, "dark", saved.Theme)
		assert.False(t, saved.Notifications)
		assert.True(t, saved.CreatedAt.Equal(existing.CreatedAt))

		// Still exactly one record for the user.
		again, err := svc.GetOrCreate(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, again.ID)
		assert.Equal(t, "dark", again.Theme)
	})

	t.Run("creates when no record exists", func(t *testing.T) {
		saved, err := svc.Put(ctx, "fresh", &datatypes.Settings{Theme: "dark"})
		require.NoError(t, err)

		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, "fresh", saved.UserID)
		assert.Equal(t, "dark", saved.Theme)
	})

	t.Run("path user id wins over body user id", func(t *testing.T) {
		saved, err := svc.Put(ctx, "path-user", &datatypes.Settings{UserID: "body-user", Theme: "light"})
		require.NoError(t, err)
		assert.Equal(t, "path-user", saved.UserID)
	})
}
