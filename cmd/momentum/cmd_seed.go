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
	"context"
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/MomentumLocal/pkg/logging"
	"github.com/AleutianAI/MomentumLocal/services/planner/config"
	"github.com/AleutianAI/MomentumLocal/services/planner/seed"
)

// runSeed populates empty collections and exits. The server performs
// the same seeding at startup; this command exists for provisioning a
// data directory ahead of time.
func runSeed(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "planner",
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StorageBackend, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	if err := seed.NewSeeder(st).Run(context.Background()); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}
	slog.Info("seed complete", "data_dir", cfg.DataDir, "backend", cfg.StorageBackend)
}
