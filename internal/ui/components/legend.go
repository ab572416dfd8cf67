// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
	"github.com/jeranaias/bmicalc-tui/internal/util"
)

// BandLegend renders the category table, one band per line. The active
// category, if any, is highlighted with a marker.
func BandLegend(theme *styles.Theme, active *bmi.Category) string {
	bands := bmi.Bands()

	nameWidth := 0
	for _, b := range bands {
		if w := util.StringWidth(b.Category.String()); w > nameWidth {
			nameWidth = w
		}
	}

	lines := make([]string, 0, len(bands))
	for _, b := range bands {
		marker := "  "
		name := util.PadRight(b.Category.String(), nameWidth)
		line := theme.BandLegend.Render(name + "  " + b.Label())
		if active != nil && *active == b.Category {
			marker = "> "
			line = theme.BandLegendActive.Foreground(styles.CategoryColor(b.Category)).
				Render(name + "  " + b.Label())
		}
		lines = append(lines, marker+line)
	}
	return strings.Join(lines, "\n")
}
