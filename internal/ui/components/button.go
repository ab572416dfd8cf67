// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
)

// Button is a focusable action label.
type Button struct {
	Label   string
	focused bool
	theme   *styles.Theme
}

// NewButton creates a blurred button.
func NewButton(theme *styles.Theme, label string) *Button {
	return &Button{Label: label, theme: theme}
}

// Focus marks the button as focused.
func (b *Button) Focus() { b.focused = true }

// Blur removes focus.
func (b *Button) Blur() { b.focused = false }

// Focused returns whether the button is focused.
func (b *Button) Focused() bool { return b.focused }

// SetTheme swaps the styles used for rendering.
func (b *Button) SetTheme(theme *styles.Theme) { b.theme = theme }

// View renders the button. Focus is shown with brackets as well as color
// so it stays visible without color support.
func (b *Button) View() string {
	if b.focused {
		return b.theme.ButtonFocused.Render("[ " + b.Label + " ]")
	}
	return b.theme.Button.Render("  " + b.Label + "  ")
}
