// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"slices"

	"github.com/janderssonse/repodeck/internal/domain"
)

// BuildLanguages returns the distinct languages present in records, in
// ascending order. The excluded repository and records without a language
// do not contribute.
func BuildLanguages(records []domain.Repository, excluded string) []string {
	seen := make(map[string]struct{}, len(records))
	languages := make([]string, 0, len(records))

	for _, record := range records {
		if isExcluded(record, excluded) || !record.HasLanguage() {
			continue
		}

		if _, ok := seen[record.Language]; ok {
			continue
		}

		seen[record.Language] = struct{}{}
		languages = append(languages, record.Language)
	}

	slices.Sort(languages)

	return languages
}
