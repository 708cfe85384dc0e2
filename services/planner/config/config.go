// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the planner configuration.
//
// Precedence, lowest to highest: built-in defaults, an optional YAML
// config file, environment variables. Every value has a working default
// so `momentum serve` runs with no configuration at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// Config holds the planner's runtime configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// StorageBackend selects the document store: "file" or "badger".
	StorageBackend string `yaml:"storage_backend"`

	// DataDir is the directory holding collection files (file backend)
	// or the BadgerDB database (badger backend).
	DataDir string `yaml:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogDir enables file logging when set.
	LogDir string `yaml:"log_dir"`

	// CORSOrigin is the allowed cross-origin value; empty means "*".
	CORSOrigin string `yaml:"cors_origin"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:           "5000",
		StorageBackend: BackendFile,
		DataDir:        "data",
		LogLevel:       "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (skipped silently when the file does not exist), and environment
// variables, in that order.
//
// Inputs:
//
//	path - Config file path. Empty means no file lookup at all.
//
// Outputs:
//
//	*Config - The merged configuration
//	error - Non-nil if the file exists but cannot be read or parsed,
//	        or if the merged result is invalid
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// No config file is fine; defaults and env cover everything.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("MOMENTUM_PORT", cfg.Port)
	cfg.StorageBackend = getEnv("MOMENTUM_STORAGE_BACKEND", cfg.StorageBackend)
	cfg.DataDir = getEnv("MOMENTUM_DATA_DIR", cfg.DataDir)
	cfg.LogLevel = getEnv("MOMENTUM_LOG_LEVEL", cfg.LogLevel)
	cfg.LogDir = getEnv("MOMENTUM_LOG_DIR", cfg.LogDir)
	cfg.CORSOrigin = getEnv("MOMENTUM_CORS_ORIGIN", cfg.CORSOrigin)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendBadger:
	default:
		return fmt.Errorf("invalid storage backend %q (want %q or %q)",
			c.StorageBackend, BackendFile, BackendBadger)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
