// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the calculator card.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CARD STYLES
	// ==========================================================================

	App         lipgloss.Style
	Card        lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style

	// ==========================================================================
	// FIELD STYLES
	// ==========================================================================

	Label            lipgloss.Style
	LabelFocused     lipgloss.Style
	Field            lipgloss.Style
	FieldFocused     lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	Cursor           lipgloss.Style

	// ==========================================================================
	// BUTTON STYLES
	// ==========================================================================

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// ==========================================================================
	// FEEDBACK STYLES
	// ==========================================================================

	ErrorBanner    lipgloss.Style
	ResultPanel    lipgloss.Style
	ResultValue    lipgloss.Style
	ResultCategory lipgloss.Style

	// ==========================================================================
	// LEGEND AND HELP
	// ==========================================================================

	BandLegend       lipgloss.Style
	BandLegendActive lipgloss.Style
	Help             lipgloss.Style
}

// NewTheme creates a new theme with all styles configured, detecting the
// terminal background.
func NewTheme() *Theme {
	return NewThemeForMode("auto")
}

// NewThemeForMode creates a theme for "dark", "light" or "auto".
// Forcing a mode also tells lipgloss which side of every AdaptiveColor to use.
func NewThemeForMode(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "dark":
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.Description = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Fields
	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.LabelFocused = lipgloss.NewStyle().
		Foreground(FocusRing).
		Bold(true)

	t.Field = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.FieldFocused = t.Field.
		BorderForeground(FocusRing)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(FocusRing).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Cursor = lipgloss.NewStyle().
		Foreground(Purple)

	// Button
	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 3).
		Align(lipgloss.Center)

	t.ButtonFocused = t.Button.
		Foreground(TextInverse).
		Background(Purple).
		Bold(true)

	// Feedback
	t.ErrorBanner = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		BorderForeground(RoseDeep).
		PaddingLeft(1)

	t.ResultPanel = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(1, 2).
		Align(lipgloss.Center)

	t.ResultValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.ResultCategory = lipgloss.NewStyle().
		Bold(true)

	// Legend and help
	t.BandLegend = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.BandLegendActive = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	t.Help = lipgloss.NewStyle().
		Foreground(TextMuted).
		MarginTop(1)
}

// CategoryStyle returns ResultCategory colored for c.
func (t *Theme) CategoryStyle(c bmi.Category) lipgloss.Style {
	return t.ResultCategory.Foreground(CategoryColor(c))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// CardWidth returns the outer card width, border included, never wider than
// the terminal minus the app padding. A zero terminal width means the size
// is unknown.
func (t *Theme) CardWidth(preferred int) int {
	if t.Width > 0 && t.Width-4 < preferred {
		if t.Width-4 < 20 {
			return 20
		}
		return t.Width - 4
	}
	return preferred
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
