// bmicalc - A Body Mass Index calculator for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bmicalc-tui/internal/cli"
	"github.com/jeranaias/bmicalc-tui/internal/config"
	"github.com/jeranaias/bmicalc-tui/internal/ui/form"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run())
}

// run parses the command line, loads configuration, sets up logging and
// dispatches to the command handler. It returns the process exit code.
func run() int {
	cmd, args, err := cli.Parse()
	if err != nil {
		return fail(err, args, true)
	}

	if args.NoColor {
		cli.ForceColorsEnabled(false)
	}

	// config path and config init must work with a broken file, so they
	// run on defaults instead of the loaded config.
	cfg := config.Default()
	if cli.NeedsConfig(cmd, args) {
		if err := cli.LoadConfig(args); err != nil {
			return fail(err, args, true)
		}
		cfg = config.Global()
	}

	logger, closeLog, err := cli.SetupLogging(cfg, args, cmd == cli.CmdTUI)
	if err != nil {
		return fail(err, args, true)
	}
	defer closeLog()

	logger.Debug("starting", "command", cmd.String(), "version", Version)

	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args, cfg, logger)
	case cli.CmdCalc:
		err = cli.HandleCalc(args, logger)
	case cli.CmdPrompt:
		err = cli.HandlePrompt(args, cfg, logger)
	case cli.CmdBands:
		err = cli.HandleBands(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args, cfg)
	case cli.CmdVersion:
		err = cli.HandleVersion(args)
	default:
		err = cli.HandleHelp()
	}

	if err != nil {
		logger.Debug("command failed", "command", cmd.String(), "error", err)
		return fail(err, args, false)
	}
	return cli.ExitSuccess
}

// fail reports err and returns its exit code. Command handlers print their
// own JSON error envelope; failures before a handler ran do not, so early
// is true for those.
func fail(err error, args cli.Args, early bool) int {
	if args.JSON && early {
		cli.NewJSONErrorResponse("bmicalc", err).Print(os.Stdout)
	} else {
		cli.DisplayError(os.Stderr, err, args.JSON)
	}
	return cli.GetExitCode(err)
}

// runTUI starts the interactive form and keeps it in sync with the config
// file until the user quits.
func runTUI(args cli.Args, cfg *config.Config, logger *slog.Logger) error {
	// CLI args override config
	if args.Compact {
		cfg = cfg.Clone()
		cfg.UI.CompactMode = true
	}

	m := form.New(cfg, form.WithLogger(logger))
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	onReload := func(newCfg *config.Config, err error) {
		if err == nil && newCfg != nil {
			config.SetGlobal(newCfg)
			if args.Compact {
				newCfg = newCfg.Clone()
				newCfg.UI.CompactMode = true
			}
		}
		p.Send(form.ConfigReloadedMsg{Config: newCfg, Err: err})
	}

	var watcher *config.Watcher
	var watchErr error
	if args.ConfigPath != "" {
		watcher, watchErr = config.Watch(ctx, args.ConfigPath, onReload, config.WithWatchLogger(logger))
	} else {
		watcher, watchErr = config.WatchDefault(ctx, onReload, config.WithWatchLogger(logger))
	}
	if watchErr != nil {
		logger.Warn("config hot reload disabled", "error", watchErr)
	} else {
		defer watcher.Close()
	}

	logger.Info("tui started", "theme", cfg.UI.Theme, "width", cfg.UI.Width)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("tui stopped")
	return nil
}
