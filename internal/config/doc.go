// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for bmicalc.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation, and hot reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - UIConfig: Theme, compact mode, band legend and card width
//   - CalculatorConfig: Stale result policy and input limits
//   - LoggingConfig: Log level and destination
//   - Watcher: fsnotify-based reloader for config files
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (BMICALC_*)
//   - ~/.bmicalc/config.toml
//   - ~/.bmicalc/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	theme := cfg.UI.Theme
//	policy := cfg.StaleResultPolicy()
package config
