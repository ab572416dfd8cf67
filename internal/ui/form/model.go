// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/jeranaias/bmicalc-tui/internal/config"
	"github.com/jeranaias/bmicalc-tui/internal/ui/components"
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
)

// =============================================================================
// FORM TEXT
// =============================================================================

const (
	Title             = "BMI Calculator"
	Description       = "Enter your height and weight to calculate BMI."
	HeightLabel       = "Height (cm)"
	WeightLabel       = "Weight (kg)"
	HeightPlaceholder = "Enter Your height in (cm)"
	WeightPlaceholder = "Enter Your weight in (kg)"
	ButtonLabel       = "Calculate BMI"
)

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies the focused control.
type Focus int

const (
	FocusHeight Focus = iota
	FocusWeight
	FocusButton

	focusCount
)

// String returns the control name.
func (f Focus) String() string {
	switch f {
	case FocusHeight:
		return "height"
	case FocusWeight:
		return "weight"
	case FocusButton:
		return "button"
	default:
		return "unknown"
	}
}

// =============================================================================
// FORM MODEL
// =============================================================================

// Model is the Bubble Tea model for the calculator form.
type Model struct {
	calc *bmi.Calculator

	// Controls
	height *components.NumberField
	weight *components.NumberField
	button *components.Button
	focus  Focus

	// Help footer
	keys KeyMap
	help help.Model

	// Styling and layout
	theme     *styles.Theme
	themeMode string
	compact   bool
	showBands bool
	cardWidth int

	logger   *slog.Logger
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used by the form and its calculator.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTheme overrides the theme derived from the config.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) {
		if t != nil {
			m.theme = t
		}
	}
}

// New creates the form from cfg. A nil cfg uses config.Default().
// The height field starts focused.
func New(cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		m.theme = styles.NewThemeForMode(cfg.UI.Theme)
		m.themeMode = cfg.UI.Theme
	}

	m.calc = bmi.NewCalculator(
		bmi.WithStaleResultPolicy(cfg.StaleResultPolicy()),
		bmi.WithLogger(m.logger),
	)

	limit := cfg.Calculator.InputCharLimit
	m.height = components.NewNumberField(m.theme, HeightLabel, HeightPlaceholder, limit)
	m.weight = components.NewNumberField(m.theme, WeightLabel, WeightPlaceholder, limit)
	m.button = components.NewButton(m.theme, ButtonLabel)

	m.compact = cfg.UI.CompactMode
	m.showBands = cfg.UI.ShowBands
	m.cardWidth = cfg.UI.Width
	m.layout()

	m.height.Focus()
	m.focus = FocusHeight
	return m
}

// Calculator returns the view model backing the form.
func (m Model) Calculator() *bmi.Calculator {
	return m.calc
}

// Focused returns the focused control.
func (m Model) Focused() Focus {
	return m.focus
}

// HeightText returns the raw text of the height field.
func (m Model) HeightText() string {
	return m.height.Value()
}

// WeightText returns the raw text of the weight field.
func (m Model) WeightText() string {
	return m.weight.Value()
}

// ShowingFullHelp reports whether the expanded help is visible.
func (m Model) ShowingFullHelp() bool {
	return m.help.ShowAll
}

// Compact reports whether compact mode is active.
func (m Model) Compact() bool {
	return m.compact
}

// ShowBands reports whether the band legend is rendered.
func (m Model) ShowBands() bool {
	return m.showBands
}

// CharLimit returns the per-field input limit.
func (m Model) CharLimit() int {
	return m.height.CharLimit()
}

// Quitting reports whether the form has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// narrow reports a known terminal width below the medium layout. The
// description is dropped there to keep the card short.
func (m Model) narrow() bool {
	return m.theme.Width > 0 && m.theme.GetLayoutMode() == styles.LayoutNarrow
}

// contentWidth is the width available inside the card.
func (m Model) contentWidth() int {
	// border (2) + padding (4)
	w := m.theme.CardWidth(m.cardWidth) - 6
	if w < 14 {
		w = 14
	}
	return w
}

// layout propagates the current widths to the components.
func (m *Model) layout() {
	w := m.contentWidth()
	m.height.SetWidth(w)
	m.weight.SetWidth(w)
	m.help.Width = w
}

// applyConfig updates settings from a reloaded configuration.
// Field text, focus and the calculator's display state are kept.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg.UI.Theme != m.themeMode {
		m.themeMode = cfg.UI.Theme
		w, h := m.theme.Width, m.theme.Height
		m.theme = styles.NewThemeForMode(cfg.UI.Theme)
		m.theme.SetSize(w, h)
		m.height.SetTheme(m.theme)
		m.weight.SetTheme(m.theme)
		m.button.SetTheme(m.theme)
	}

	m.compact = cfg.UI.CompactMode
	m.showBands = cfg.UI.ShowBands
	m.cardWidth = cfg.UI.Width
	m.height.SetCharLimit(cfg.Calculator.InputCharLimit)
	m.weight.SetCharLimit(cfg.Calculator.InputCharLimit)
	m.calc.SetStaleResultPolicy(cfg.StaleResultPolicy())
	m.layout()
}
