// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Line-editing calculator loop.
//
// Asks for height, then weight, then prints the result, and repeats until
// the user quits. Arrow keys recall earlier entries for this session.

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/jeranaias/bmicalc-tui/internal/config"
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
)

const (
	heightPrompt = "Height (cm): "
	weightPrompt = "Weight (kg): "
)

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// HandlePrompt runs the interactive calculator loop on the terminal.
// A nil cfg means config.Global().
func HandlePrompt(args Args, cfg *config.Config, logger *slog.Logger) error {
	if args.JSON {
		return OutputJSON(stdout, true, CmdPrompt.String(), func() (interface{}, error) {
			return nil, NewUsageError("prompt does not support --json", calcExample+" --json")
		})
	}

	if cfg == nil {
		cfg = config.Global()
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	return runPrompt(line, args, cfg, logger)
}

// runPrompt drives the loop. It returns nil when the user quits with
// q, quit, exit, Ctrl+C or end of input.
func runPrompt(r lineReader, args Args, cfg *config.Config, logger *slog.Logger) error {
	calc := bmi.NewCalculator(
		bmi.WithStaleResultPolicy(cfg.StaleResultPolicy()),
		bmi.WithLogger(logger),
	)

	if !args.Quiet {
		fmt.Fprintln(stdout, styles.RenderInfo("Enter height and weight. Type q to quit."))
	}

	for {
		height, done, err := readField(r, heightPrompt)
		if err != nil || done {
			return err
		}
		weight, done, err := readField(r, weightPrompt)
		if err != nil || done {
			return err
		}

		calc.SetHeightText(height)
		calc.SetWeightText(weight)
		if err := calc.Calculate(); err != nil {
			fmt.Fprintln(stdout, styles.RenderError(calc.ErrorMessage()))
			if calc.Display() == bmi.DisplayErrorWithStaleResult {
				prev, _ := calc.Result()
				fmt.Fprintln(stdout, styles.RenderWarning(
					fmt.Sprintf("Previous result: %s %s", prev.Display, prev.Category)))
			}
			continue
		}

		result, _ := calc.Result()
		if args.Quiet {
			fmt.Fprintf(stdout, "%s %s\n", result.Display, result.Category)
		} else {
			printResult(stdout, result)
		}
	}
}

// readField prompts once. done is true when the user asked to leave.
func readField(r lineReader, prompt string) (text string, done bool, err error) {
	input, err := r.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(stdout)
			return "", true, nil
		}
		return "", false, fmt.Errorf("read input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "q", "quit", "exit":
		return "", true, nil
	}

	if strings.TrimSpace(input) != "" {
		r.AppendHistory(input)
	}
	return input, false, nil
}
