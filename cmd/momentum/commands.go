// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// --- Global Command Variables ---
var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "momentum",
		Short: "A backend for the Momentum personal productivity app",
		Long: `Momentum is the backend service for a personal productivity
application: tasks, goals, users, per-user settings, and aggregated
statistics, stored locally in JSON files or an embedded BadgerDB.`,
	}

	// --- Server ---
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the Momentum HTTP server",
		Run:   runServe, // Defined in cmd_serve.go
	}

	// --- Data ---
	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Populate empty collections with starter records",
		Run:   runSeed, // Defined in cmd_seed.go
	}

	// --- Utilities ---
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the momentum version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("momentum", Version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"Path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}
