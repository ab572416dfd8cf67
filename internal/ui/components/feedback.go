// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BANNER
// =============================================================================

// ErrorBanner renders a validation message. An empty message renders nothing.
func ErrorBanner(theme *styles.Theme, message string, width int) string {
	if message == "" {
		return ""
	}
	text := styles.StatusIndicators.Error + " " + message
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.ErrorBanner.Render(text))
}

// =============================================================================
// RESULT CARD
// =============================================================================

// ResultCard renders the BMI value with the category beneath it.
// A result left over from an earlier calculation renders the same way.
func ResultCard(theme *styles.Theme, result bmi.Result, width int) string {
	value := theme.ResultValue.Render(result.Display)
	category := theme.CategoryStyle(result.Category).Render(result.Category.String())

	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, value),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, category),
	)
	return theme.ResultPanel.Width(width).Render(body)
}
