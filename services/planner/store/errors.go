// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package store

import "errors"

// Sentinel errors for document store operations.
var (
	// ErrNotFound is returned when no record matches the requested
	// identifier or predicate. Callers map it to HTTP 404.
	ErrNotFound = errors.New("record not found")

	// ErrClosed is returned when an operation is attempted on a store
	// that has already been closed.
	ErrClosed = errors.New("store is closed")
)
