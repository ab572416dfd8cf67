// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package form provides the Bubble Tea model for the interactive calculator.
//
// The model owns a bmi.Calculator and mirrors its display state: field edits
// only update the stored text, and a calculation runs when enter is pressed.
//
//	m := form.New(cfg, form.WithLogger(logger))
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
//
// Configuration changes are applied live by sending ConfigReloadedMsg.
package form
