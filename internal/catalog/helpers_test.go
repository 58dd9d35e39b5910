// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/domain"
)

const excludedName = "SoaresCRF"

var errFeedDown = errors.New("feed down")

var baseTime = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// repo builds a record updated daysAgo days before baseTime.
func repo(name, language string, daysAgo int) domain.Repository {
	return domain.Repository{
		Name:      name,
		Language:  language,
		UpdatedAt: baseTime.AddDate(0, 0, -daysAgo),
		URL:       "https://github.com/example/" + name,
	}
}

// numberedRepos builds count records named repo-01..repo-NN, newest first.
func numberedRepos(count int) []domain.Repository {
	records := make([]domain.Repository, 0, count)
	for i := 1; i <= count; i++ {
		records = append(records, repo(fmt.Sprintf("repo-%02d", i), "Go", i))
	}

	return records
}

func names(records []domain.Repository) []string {
	result := make([]string, 0, len(records))
	for _, record := range records {
		result = append(result, record.Name)
	}

	return result
}

func staticSource(records []domain.Repository) domain.RepositorySource {
	return domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return records, nil
	})
}

func failingSource() domain.RepositorySource {
	return domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return nil, errFeedDown
	})
}

// viewRecorder keeps every view handed to the renderer.
type viewRecorder struct {
	views []catalog.View
}

func (r *viewRecorder) Render(view catalog.View) {
	r.views = append(r.views, view)
}

func (r *viewRecorder) last() catalog.View {
	return r.views[len(r.views)-1]
}

func loadedController(records []domain.Repository) (*catalog.Controller, *viewRecorder) {
	recorder := &viewRecorder{}
	controller := catalog.NewController(staticSource(records), recorder, catalog.Options{Excluded: excludedName})
	controller.Load(context.Background())

	return controller, recorder
}
