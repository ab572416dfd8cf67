// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the bmicalc TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection.

# Color System (colors.go)

  - Purple - Card title and focused button
  - Cyan - Focus ring, underweight band
  - Emerald - Normal band
  - Amber - Overweight band
  - Rose - Errors, obese band

CategoryColor maps a bmi.Category onto its band color.

# Theme System (theme.go)

	theme := styles.NewThemeForMode(cfg.UI.Theme)
	card := theme.Card.Width(theme.CardWidth(cfg.UI.Width))
	label := theme.CategoryStyle(result.Category).Render(result.Category.String())
*/
package styles
