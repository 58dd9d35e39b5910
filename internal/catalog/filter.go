// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog derives the visible repository list from the fetched records
// and a small view state: filter, then sort, then paginate.
package catalog

import (
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/stringutil"
)

// Filter narrows records by name substring and optional language.
// The excluded repository is always removed. An empty search matches every
// name and an empty language matches every language.
func Filter(records []domain.Repository, search, language, excluded string) []domain.Repository {
	filtered := make([]domain.Repository, 0, len(records))

	for _, record := range records {
		if isExcluded(record, excluded) {
			continue
		}

		if !stringutil.ContainsIgnoreCase(record.Name, search) {
			continue
		}

		if language != "" && record.Language != language {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}

func isExcluded(record domain.Repository, excluded string) bool {
	return excluded != "" && record.Name == excluded
}
