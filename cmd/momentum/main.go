// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command momentum runs the Momentum personal productivity backend.
//
// The server exposes the task, goal, user, settings, and statistics
// APIs over HTTP and persists documents either as JSON collection
// files or in an embedded BadgerDB database.
//
// # Usage
//
//	# Start the server with defaults (file backend, port 5000)
//	momentum serve
//
//	# Start against BadgerDB
//	MOMENTUM_STORAGE_BACKEND=badger momentum serve
//
//	# Populate an empty data directory with starter records
//	momentum seed
//
// Configuration is read from config.yaml (when present) and
// MOMENTUM_* environment variables; see the config package for the
// full list.
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
