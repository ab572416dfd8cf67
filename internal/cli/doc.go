// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands of bmicalc.
//
// # Usage
//
//	cmd, args, err := cli.Parse()
//	switch cmd {
//	case cli.CmdCalc:
//	    err = cli.HandleCalc(args, logger)
//	case cli.CmdBands:
//	    err = cli.HandleBands(args)
//	// ...
//	}
//	os.Exit(cli.GetExitCode(err))
//
// # Commands
//
//   - calc: one-shot calculation from --height/--weight or two values
//   - prompt: line-editing loop asking for height then weight
//   - bands: category band table (markdown rendered with glamour)
//   - config: show, list, get, set, path and init
//   - version, help
//
// All commands support --json, which prints a JSONResponse envelope.
package cli
