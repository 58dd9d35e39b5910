// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models defines shared navigation messages between UI sections.
package models

import "github.com/janderssonse/repodeck/internal/catalog"

// NavigateMsg is a message sent to request navigation to a specific section.
type NavigateMsg struct {
	Screen int
	Data   any // Optional data to pass to the new section
}

// Section constants for navigation, in tab order.
const (
	AboutScreen = iota
	ProjectsScreen
	HelpScreen
)

// SectionCount is the number of navigable sections.
const SectionCount = HelpScreen + 1

// SectionTitle returns the tab title of a section.
func SectionTitle(screen int) string {
	switch screen {
	case AboutScreen:
		return "About"
	case ProjectsScreen:
		return "Projects"
	case HelpScreen:
		return "Help"
	default:
		return ""
	}
}

// Common message constants.
const (
	GoodbyeMessage     = "Goodbye!\n"
	FailedContentMsg   = "Failed to load content."
	LoadingProjectsMsg = "Loading repositories..."
	FetchFailedMsg     = "Repositories could not be loaded."
	NoResultsMsg       = "No repositories match the current filters."
)

// RepositoriesLoadedMsg carries the result of the initial fetch back to the
// event loop.
type RepositoriesLoadedMsg struct {
	Result catalog.LoadResult
}

// AboutLoadedMsg carries the About markdown fragment.
type AboutLoadedMsg struct {
	Content string
	Err     error
}

// InputCapturer is implemented by models that temporarily own every key
// press, such as while a text input is focused or a popup is open.
type InputCapturer interface {
	CapturesInput() bool
}
