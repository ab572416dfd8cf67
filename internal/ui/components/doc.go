// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the widgets the calculator form is built from.

Each component renders with a *styles.Theme and holds no calculation logic.

  - NumberField (field.go) - labeled bubbles/textinput holding raw text
  - Button (button.go) - focusable action label
  - ErrorBanner, ResultCard (feedback.go) - conditional feedback regions
  - BandLegend (legend.go) - category table with the active band marked
*/
package components
