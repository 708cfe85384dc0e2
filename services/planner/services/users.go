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

// UserService provides validated CRUD over the users collection with
// best-effort email uniqueness.
type UserService struct {
	users store.Collection[*datatypes.User]
}

// NewUserService creates a user service over the given store.
func NewUserService(s store.Store) *UserService {
	return &UserService{users: s.Users()}
}

// List returns every user profile.
func (s *UserService) List(ctx context.Context) ([]*datatypes.User, error) {
	return s.users.List(ctx)
}

// Get returns the user with the given key, trying the identifier first
// and falling back to an email match. The frontend addresses the
// profile page by either.
func (s *UserService) Get(ctx context.Context, key string) (*datatypes.User, error) {
	user, err := s.users.FindByID(ctx, key)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return s.users.FindOne(ctx, func(u *datatypes.User) bool { return u.Email == key })
}

// Create validates and persists a new user profile.
//
// Description:
//
//	Rejects the record with ErrEmailExists when another user already
//	carries the same email. The check-then-insert sequence is not
//	atomic against concurrent creations; this is accepted best-effort
//	behavior for a single-user deployment.
//
// Inputs:
//
//	ctx - Context for cancellation
//	user - Profile to persist. Name and Email are required.
//
// Outputs:
//
//	*datatypes.User - The stored record with assigned id and timestamps
//	error - ErrValidation, ErrEmailExists, or a store failure
func (s *UserService) Create(ctx context.Context, user *datatypes.User) (*datatypes.User, error) {
	if err := checkRequired(user); err != nil {
		return nil, err
	}

	_, err := s.users.FindOne(ctx, func(u *datatypes.User) bool { return u.Email == user.Email })
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user.SetID("")
	now := time.Now().UTC()
	user.SetCreatedAt(now)
	user.SetUpdatedAt(now)
	return s.users.Insert(ctx, user)
}

// Replace overwrites the user with the given id in full, preserving the
// identifier and original CreatedAt and refreshing UpdatedAt.
func (s *UserService) Replace(ctx context.Context, id string, user *datatypes.User) (*datatypes.User, error) {
	if err := checkRequired(user); err != nil {
		return nil, err
	}
	existing, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.SetCreatedAt(existing.GetCreatedAt())
	user.SetUpdatedAt(time.Now().UTC())
	return s.users.Replace(ctx, id, user)
}

// Delete removes the user with the given id, or returns
// store.ErrNotFound. The user's tasks, goals and settings are left in
// place; their user_id is opaque and carries no referential integrity.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
