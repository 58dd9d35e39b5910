// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "time"

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data any) error

	// Error outputs an error message
	Error(message string) error

	// Info outputs an informational message
	Info(message string) error

	// Table outputs tabular data
	Table(headers []string, rows [][]string) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// RepositoryEntry is one rendered repository with its display hints applied.
type RepositoryEntry struct {
	Name            string    `json:"name"`
	URL             string    `json:"html_url"`
	Description     string    `json:"description"`
	Language        string    `json:"language"`
	Color           string    `json:"color"`
	BadgeBackground string    `json:"badge_background"`
	Updated         string    `json:"updated"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PageLink is one pager control.
type PageLink struct {
	Label    string `json:"label"`
	Page     int    `json:"page"`
	Active   bool   `json:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// ListResult is one page of the repository list.
type ListResult struct {
	Repositories []RepositoryEntry `json:"repositories"`
	Count        string            `json:"count"`
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	Total        int               `json:"total"`
	Start        int               `json:"start"`
	End          int               `json:"end"`
	Search       string            `json:"search,omitempty"`
	Language     string            `json:"language,omitempty"`
	Sort         string            `json:"sort"`
	SortLabel    string            `json:"sort_label"`
	Pager        []PageLink        `json:"pager,omitempty"`
	FetchFailed  bool              `json:"fetch_failed,omitempty"`
}

// LanguageEntry is one entry of the language selector.
type LanguageEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// LanguagesResult is the language catalog with display hints.
type LanguagesResult struct {
	Languages []LanguageEntry `json:"languages"`
	Total     int             `json:"total"`
}
