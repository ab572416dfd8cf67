// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blinking in the focused field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles window, config and key messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.theme.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil || msg.Config == nil {
			m.logger.Warn("keeping current settings after failed config reload", "error", msg.Err)
			return m, nil
		}
		m.applyConfig(msg.Config)
		m.logger.Info("applied reloaded config")
		return m, nil

	case CalculatedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedField(msg)
}

// handleKey routes a key press. Bound keys are consumed; everything else
// goes to the focused field.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Calculate):
		return m, m.calculate()

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)

	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)

	case m.focus == FocusButton && key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, m.updateFocusedField(msg)
}

// updateFocusedField forwards msg to the focused field and copies the raw
// text into the calculator. No calculation happens here.
func (m *Model) updateFocusedField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case FocusHeight:
		cmd = m.height.Update(msg)
		m.calc.SetHeightText(m.height.Value())
	case FocusWeight:
		cmd = m.weight.Update(msg)
		m.calc.SetWeightText(m.weight.Value())
	}
	return cmd
}

// setFocus moves focus to f and blurs every other control.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.height.Blur()
	m.weight.Blur()
	m.button.Blur()
	m.focus = f

	switch f {
	case FocusHeight:
		return m.height.Focus()
	case FocusWeight:
		return m.weight.Focus()
	default:
		m.button.Focus()
		return nil
	}
}

// calculate runs the calculator on the current field text.
func (m *Model) calculate() tea.Cmd {
	m.calc.SetHeightText(m.height.Value())
	m.calc.SetWeightText(m.weight.Value())
	err := m.calc.Calculate()
	return func() tea.Msg {
		return CalculatedMsg{Err: err}
	}
}
