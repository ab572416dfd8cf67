// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
	"github.com/jeranaias/bmicalc-tui/internal/util"
)

// =============================================================================
// NUMBER FIELD COMPONENT - Labeled text input for a measurement
// =============================================================================

// NumberField is a labeled single-line input. It stores the raw text exactly
// as typed; parsing happens only when the form calculates.
type NumberField struct {
	Label string

	input   textinput.Model
	width   int
	focused bool
	theme   *styles.Theme
}

// NewNumberField creates a blurred field with the given label and placeholder.
func NewNumberField(theme *styles.Theme, label, placeholder string, charLimit int) *NumberField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Cursor.Style = theme.Cursor
	ti.Blur()

	f := &NumberField{
		Label: label,
		input: ti,
		theme: theme,
	}
	f.SetWidth(40)
	return f
}

// Focus focuses the field and returns the cursor blink command.
func (f *NumberField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur removes focus from the field.
func (f *NumberField) Blur() {
	f.focused = false
	f.input.Blur()
}

// Focused returns whether the field is focused.
func (f *NumberField) Focused() bool {
	return f.focused
}

// Value returns the raw text.
func (f *NumberField) Value() string {
	return f.input.Value()
}

// SetValue replaces the raw text.
func (f *NumberField) SetValue(v string) {
	f.input.SetValue(v)
}

// Placeholder returns the placeholder shown while the field is empty.
func (f *NumberField) Placeholder() string {
	return f.input.Placeholder
}

// SetCharLimit changes the maximum input length. Existing text is kept.
func (f *NumberField) SetCharLimit(n int) {
	f.input.CharLimit = n
}

// CharLimit returns the maximum input length.
func (f *NumberField) CharLimit() int {
	return f.input.CharLimit
}

// SetTheme swaps the styles used for rendering.
func (f *NumberField) SetTheme(theme *styles.Theme) {
	f.theme = theme
	f.input.PromptStyle = theme.InputPrompt
	f.input.TextStyle = theme.InputText
	f.input.PlaceholderStyle = theme.InputPlaceholder
	f.input.Cursor.Style = theme.Cursor
}

// SetWidth sets the outer width of the field including its border.
func (f *NumberField) SetWidth(width int) {
	f.width = width
	// border (2) + padding (2) + prompt (2) + cursor (1)
	inner := width - 7
	if inner < 8 {
		inner = 8
	}
	// textinput sizes its placeholder buffer from Width, so Width must stay
	// below the placeholder length.
	if n := len([]rune(f.input.Placeholder)); n > 1 && inner > n-1 {
		inner = n - 1
	}
	f.input.Width = inner
}

// Update forwards key input to the text input while focused.
func (f *NumberField) Update(msg tea.Msg) tea.Cmd {
	if !f.focused {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the label above the bordered input.
func (f *NumberField) View() string {
	labelStyle := f.theme.Label
	boxStyle := f.theme.Field
	if f.focused {
		labelStyle = f.theme.LabelFocused
		boxStyle = f.theme.FieldFocused
	}

	label := labelStyle.Render(util.TruncateWidth(f.Label, f.width))
	box := boxStyle.Width(f.width - 2).Render(f.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}
