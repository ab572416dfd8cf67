// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/jeranaias/bmicalc-tui/internal/ui/components"
	"github.com/jeranaias/bmicalc-tui/internal/util"
)

// View renders the calculator card.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.contentWidth()
	sections := []string{m.theme.Title.Render(util.TruncateWidth(Title, w))}
	if !m.compact && !m.narrow() {
		sections = append(sections, m.theme.Description.Width(w).Render(Description))
	}

	sections = append(sections,
		"",
		m.height.View(),
		m.weight.View(),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, m.button.View()),
	)

	switch m.calc.Display() {
	case bmi.DisplayError:
		sections = append(sections, "", components.ErrorBanner(m.theme, m.calc.ErrorMessage(), w))
	case bmi.DisplayResult:
		sections = append(sections, "", m.resultView(w))
	case bmi.DisplayErrorWithStaleResult:
		sections = append(sections,
			"",
			components.ErrorBanner(m.theme, m.calc.ErrorMessage(), w),
			m.resultView(w),
		)
	}

	if m.showBands {
		var active *bmi.Category
		if r, ok := m.calc.Result(); ok {
			active = &r.Category
		}
		sections = append(sections, "", components.BandLegend(m.theme, active))
	}

	card := m.theme.Card.
		Width(m.theme.CardWidth(m.cardWidth) - 2).
		Render(strings.Join(sections, "\n"))

	var b strings.Builder
	b.WriteString(card)
	if !m.compact {
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	}
	return m.theme.App.Render(b.String())
}

func (m Model) resultView(w int) string {
	r, ok := m.calc.Result()
	if !ok {
		return ""
	}
	return components.ResultCard(m.theme, r, w)
}
