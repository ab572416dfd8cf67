// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for bmicalc.
//
// # Key Functions
//
// String Utilities:
//   - StringWidth: display width in terminal columns
//   - TruncateWidth: width-aware truncation with ellipsis
//   - PadRight: column alignment for the band legend
//
// File Operations:
//   - AtomicWriteFile: temp file plus rename, used for config saves
//
// # Usage
//
//	// Keep a label inside a fixed-width card
//	label := util.TruncateWidth(text, 40)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0600)
package util
