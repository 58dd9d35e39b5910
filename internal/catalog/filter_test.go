// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"testing"

	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	records := []domain.Repository{
		repo("portfolio", "JavaScript", 1),
		repo("go-cli", "Go", 2),
		repo("GoKit", "Go", 3),
		repo("rusty", "Rust", 4),
		repo("notes", "", 5),
		repo(excludedName, "Go", 6),
	}

	tests := []struct {
		name     string
		search   string
		language string
		want     []string
	}{
		{
			name: "empty inputs keep everything but the excluded repository",
			want: []string{"portfolio", "go-cli", "GoKit", "rusty", "notes"},
		},
		{
			name:   "search is a case-insensitive substring",
			search: "GO",
			want:   []string{"go-cli", "GoKit"},
		},
		{
			name:     "language is an exact match",
			language: "Go",
			want:     []string{"go-cli", "GoKit"},
		},
		{
			name:     "language match is case-sensitive",
			language: "go",
			want:     []string{},
		},
		{
			name:     "search and language combine",
			search:   "kit",
			language: "Go",
			want:     []string{"GoKit"},
		},
		{
			name:     "unknown language yields an empty result",
			language: "COBOL",
			want:     []string{},
		},
		{
			name:   "searching for the excluded repository finds nothing",
			search: "soares",
			want:   []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := catalog.Filter(records, testCase.search, testCase.language, excludedName)
			assert.Equal(t, testCase.want, names(got))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	records := numberedRepos(15)

	first := catalog.Filter(records, "1", "Go", excludedName)
	second := catalog.Filter(first, "1", "Go", excludedName)

	assert.Equal(t, first, second)
	assert.Len(t, records, 15, "input must not shrink")
}

func TestFilterWithoutExclusionKeepsUnnamedRecords(t *testing.T) {
	t.Parallel()

	records := []domain.Repository{{Name: ""}, repo("a", "Go", 1)}

	got := catalog.Filter(records, "", "", "")
	assert.Len(t, got, 2)
}
