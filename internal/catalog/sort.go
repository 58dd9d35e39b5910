// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/janderssonse/repodeck/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects one of the fixed record orderings.
type SortMode int

// Sort modes, in toggle order.
const (
	RecentFirst SortMode = iota
	OldestFirst
	AlphabeticalAscending

	sortModeCount
)

// Next returns the mode that follows m in toggle order, wrapping around.
func (m SortMode) Next() SortMode {
	if m < 0 || m >= sortModeCount {
		return RecentFirst
	}

	return (m + 1) % sortModeCount
}

// String returns the identifier used on the command line and in the API.
func (m SortMode) String() string {
	switch m {
	case RecentFirst:
		return "recent"
	case OldestFirst:
		return "oldest"
	case AlphabeticalAscending:
		return "name"
	default:
		return "unknown"
	}
}

// Label returns the text shown on the sort toggle.
func (m SortMode) Label() string {
	switch m {
	case RecentFirst:
		return "Showing: Recent"
	case OldestFirst:
		return "Showing: Oldest"
	case AlphabeticalAscending:
		return "Showing: A–Z"
	default:
		return "Showing: Unsorted"
	}
}

// SortModes returns every mode in toggle order.
func SortModes() []SortMode {
	return []SortMode{RecentFirst, OldestFirst, AlphabeticalAscending}
}

// ParseSortMode maps an identifier back to a mode. The empty string selects the default.
func ParseSortMode(value string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "recent":
		return RecentFirst, nil
	case "oldest":
		return OldestFirst, nil
	case "name", "alpha", "a-z":
		return AlphabeticalAscending, nil
	default:
		return RecentFirst, fmt.Errorf("%w: %q", domain.ErrInvalidSortMode, value)
	}
}

// Sort returns a new slice ordered by mode. The input is left untouched and
// records with equal keys keep their relative order. AlphabeticalAscending
// compares names with the collation rules of collation; the zero tag selects
// the root collation.
func Sort(records []domain.Repository, mode SortMode, collation language.Tag) []domain.Repository {
	sorted := slices.Clone(records)

	switch mode {
	case RecentFirst:
		slices.SortStableFunc(sorted, func(a, b domain.Repository) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	case OldestFirst:
		slices.SortStableFunc(sorted, func(a, b domain.Repository) int {
			return a.UpdatedAt.Compare(b.UpdatedAt)
		})
	case AlphabeticalAscending:
		// Collator keeps scratch buffers, so each call gets its own.
		collator := collate.New(collation)
		slices.SortStableFunc(sorted, func(a, b domain.Repository) int {
			return collator.CompareString(a.Name, b.Name)
		})
	}

	return sorted
}
