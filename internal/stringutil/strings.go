// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string helpers shared by the list logic and the renderers.
package stringutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ContainsIgnoreCase checks if text contains substr (case-insensitive).
// An empty substr is contained in every text.
func ContainsIgnoreCase(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

// Truncate shortens text to at most width terminal cells, ending in an ellipsis
// when anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(text, width, "...")
}

// PadRight pads text with spaces up to width terminal cells.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}
