// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/tui/styles"
)

// TestExcludedRepository is hidden by models built with the test helpers.
const TestExcludedRepository = "SoaresCRF"

// NewTestRepositories returns count Go and Rust records, newest first, plus
// the excluded repository.
func NewTestRepositories(count int) []domain.Repository {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	records := make([]domain.Repository, 0, count+1)

	for i := 1; i <= count; i++ {
		language := "Go"
		if i%3 == 0 {
			language = "Rust"
		}

		records = append(records, domain.Repository{
			Name:        fmt.Sprintf("repo-%02d", i),
			Description: "Test repository " + fmt.Sprint(i),
			Language:    language,
			UpdatedAt:   base.AddDate(0, 0, -i),
			URL:         "https://github.com/example/" + fmt.Sprintf("repo-%02d", i),
		})
	}

	return append(records, domain.Repository{
		Name:      TestExcludedRepository,
		Language:  "Python",
		UpdatedAt: base,
	})
}

// NewTestProjects creates a projects model with records already loaded, so
// tests never touch the network.
func NewTestProjects(styleConfig *styles.Styles, records []domain.Repository, width, height int) *Projects {
	model := NewTestProjectsLoading(styleConfig, domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return records, nil
	}))

	model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model.Update(RepositoriesLoadedMsg{Result: catalog.LoadResult{Records: records}})

	return model
}

// NewTestProjectsLoading creates a projects model that has not received its
// fetch result yet.
func NewTestProjectsLoading(styleConfig *styles.Styles, source domain.RepositorySource) *Projects {
	return NewProjects(context.Background(), styleConfig, source, ProjectsOptions{
		Excluded:  TestExcludedRepository,
		Timeout:   time.Second,
		Presenter: display.NewPresenter(display.DefaultPalette(), display.NewFormatter("en-US")),
	})
}
