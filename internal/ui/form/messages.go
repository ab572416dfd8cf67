// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"github.com/jeranaias/bmicalc-tui/internal/config"
)

// ConfigReloadedMsg is sent when the configuration file changes on disk.
// Err is set when the new file could not be loaded; the form then keeps its
// current settings.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// CalculatedMsg is emitted after every calculation so a parent model or a
// test can observe the outcome without inspecting the view.
type CalculatedMsg struct {
	Err error
}
