// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"log/slog"
	"strings"

	"github.com/jeranaias/bmicalc-tui/internal/bmi"
)

// StaleResultPolicy maps calculator.clear_result_on_error onto the calculator policy.
func (c *Config) StaleResultPolicy() bmi.StaleResultPolicy {
	if c.Calculator.ClearResultOnError {
		return bmi.StaleResultClear
	}
	return bmi.StaleResultKeep
}

// LogLevel returns logging.level as an slog.Level. Unknown values map to warn.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
