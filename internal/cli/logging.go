// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jeranaias/bmicalc-tui/internal/config"
)

// SetupLogging builds the process logger and installs it as the slog default.
// The TUI owns the terminal, so tui runs log to a file; every other command
// logs to stderr. The returned close function must be called on exit.
//
// Level precedence: --verbose (debug), then --quiet (error), then
// logging.level from the config.
func SetupLogging(cfg *config.Config, args Args, tui bool) (*slog.Logger, func() error, error) {
	level := cfg.LogLevel()
	if args.Quiet {
		level = slog.LevelError
	}
	if args.Verbose {
		level = slog.LevelDebug
	}

	var dest io.Writer = stderr
	closeFn := func() error { return nil }

	if tui {
		path := cfg.Logging.File
		if path == "" {
			var err error
			path, err = config.DefaultLogPath()
			if err != nil {
				return nil, nil, &ConfigError{Err: fmt.Errorf("resolve log path: %w", err)}
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		dest = f
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(dest, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, closeFn, nil
}
