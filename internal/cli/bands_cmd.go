// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// bands_cmd.go - Category band table.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/bmicalc-tui/internal/bmi"
)

// BandsMarkdown returns the band table as a markdown document.
func BandsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# BMI Categories\n\n")
	sb.WriteString("| Category | BMI |\n")
	sb.WriteString("|----------|-----|\n")
	for _, b := range bmi.Bands() {
		fmt.Fprintf(&sb, "| %s | %s |\n", b.Category, b.Label())
	}
	sb.WriteString("\nBMI = weight (kg) / height (m)^2. A value on a boundary belongs to the higher band.\n")
	return sb.String()
}

// HandleBands prints the band table. Terminals get the markdown rendered
// with glamour; pipes get the raw markdown.
func HandleBands(args Args) error {
	return OutputJSON(stdout, args.JSON, CmdBands.String(), func() (interface{}, error) {
		data := newBandsData()
		if args.JSON {
			return data, nil
		}

		if args.Quiet {
			for _, b := range data.Bands {
				fmt.Fprintf(stdout, "%s\t%s\n", b.Category, b.Range)
			}
			return data, nil
		}

		doc := BandsMarkdown()
		if !IsStdoutTTY() || !ColorsEnabled() {
			fmt.Fprint(stdout, doc)
			return data, nil
		}

		rendered, err := renderMarkdown(doc)
		if err != nil {
			return nil, NewCommandError("bands", "render", "markdown rendering failed", err)
		}
		fmt.Fprint(stdout, rendered)
		return data, nil
	})
}

// renderMarkdown renders markdown for the terminal, wrapping at the
// terminal width.
func renderMarkdown(doc string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(doc)
}
