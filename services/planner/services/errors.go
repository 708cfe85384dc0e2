// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package services wraps the document store with entity-specific
// behavior: required-field validation, identifier and timestamp
// stamping, email uniqueness for users, find-or-create for settings,
// and the read-only statistics aggregation.
//
// Every error a service returns is terminal for the request: validation
// and conflict failures happen before any write, so a rejected request
// never leaves a partial record behind.
package services

import "errors"

// Sentinel errors for the service layer. Handlers map these onto HTTP
// status codes; store.ErrNotFound passes through unchanged for 404s.
var (
	// ErrValidation is returned when a required field is missing.
	// Always wrapped with a field-specific message.
	ErrValidation = errors.New("validation failed")

	// ErrEmailExists is returned when a user creation carries an email
	// already present in the users collection.
	ErrEmailExists = errors.New("user with this email already exists")
)
