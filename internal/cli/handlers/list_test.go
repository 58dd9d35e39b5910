// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cliAdapter "github.com/janderssonse/repodeck/internal/adapters/cli"
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const excludedName = "SoaresCRF"

var errFeedDown = errors.New("feed down")

func testRecords() []domain.Repository {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	records := make([]domain.Repository, 0, 13)

	for i := 1; i <= 12; i++ {
		language := "Go"
		if i > 10 {
			language = "Rust"
		}

		records = append(records, domain.Repository{
			Name:      fmt.Sprintf("repo-%02d", i),
			Language:  language,
			UpdatedAt: base.AddDate(0, 0, -i),
		})
	}

	return append(records, domain.Repository{Name: excludedName, Language: "Python", UpdatedAt: base})
}

func newBase(source domain.RepositorySource, format cliAdapter.OutputFormat) (*BaseHandler, *bytes.Buffer) {
	var buf bytes.Buffer

	return &BaseHandler{
		Timeout:   time.Second,
		Output:    cliAdapter.NewOutputAdapterWithWriter(&buf, format, false),
		Source:    source,
		Excluded:  excludedName,
		Presenter: display.NewPresenter(display.DefaultPalette(), display.NewFormatter("en-US")),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, &buf
}

func staticSource(records []domain.Repository) domain.RepositorySource {
	return domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return records, nil
	})
}

func decodeList(t *testing.T, buf *bytes.Buffer) domain.ListResult {
	t.Helper()

	var result domain.ListResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	return result
}

func TestListDefaultView(t *testing.T) {
	t.Parallel()

	base, buf := newBase(staticSource(testRecords()), cliAdapter.JSONFormat)

	require.NoError(t, NewListHandler(base).List(context.Background(), ListRequest{}))

	result := decodeList(t, buf)
	assert.Len(t, result.Repositories, 10)
	assert.Equal(t, "showing 1–10 of 12", result.Count)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, "recent", result.Sort)
	assert.Equal(t, "repo-01", result.Repositories[0].Name)
}

func TestListRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		request   ListRequest
		wantTotal int
		wantPage  int
		wantFirst string
	}{
		{name: "second page", request: ListRequest{Page: 2}, wantTotal: 12, wantPage: 2, wantFirst: "repo-11"},
		{name: "page clamped", request: ListRequest{Page: 99}, wantTotal: 12, wantPage: 2, wantFirst: "repo-11"},
		{name: "oldest first", request: ListRequest{Sort: "oldest"}, wantTotal: 12, wantPage: 1, wantFirst: "repo-12"},
		{name: "language", request: ListRequest{Language: "Rust"}, wantTotal: 2, wantPage: 1, wantFirst: "repo-11"},
		{name: "search", request: ListRequest{Search: "REPO-0"}, wantTotal: 9, wantPage: 1, wantFirst: "repo-01"},
		{name: "excluded name", request: ListRequest{Search: excludedName}, wantTotal: 0, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base, buf := newBase(staticSource(testRecords()), cliAdapter.JSONFormat)
			require.NoError(t, NewListHandler(base).List(context.Background(), tt.request))

			result := decodeList(t, buf)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantPage, result.Page)

			if tt.wantFirst != "" {
				require.NotEmpty(t, result.Repositories)
				assert.Equal(t, tt.wantFirst, result.Repositories[0].Name)
			}
		})
	}
}

func TestListNameSortFollowsLocale(t *testing.T) {
	t.Parallel()

	records := []domain.Repository{{Name: "Ärlig"}, {Name: "zeta"}, {Name: "apple"}}

	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "en-US", want: []string{"apple", "Ärlig", "zeta"}},
		{locale: "sv-SE", want: []string{"apple", "zeta", "Ärlig"}},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()

			base, buf := newBase(staticSource(records), cliAdapter.JSONFormat)
			base.Presenter = display.NewPresenter(display.DefaultPalette(), display.NewFormatter(tt.locale))

			require.NoError(t, NewListHandler(base).List(context.Background(), ListRequest{Sort: "name"}))

			result := decodeList(t, buf)

			got := make([]string, 0, len(result.Repositories))
			for _, entry := range result.Repositories {
				got = append(got, entry.Name)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListRejectsUnknownSort(t *testing.T) {
	t.Parallel()

	base, buf := newBase(staticSource(testRecords()), cliAdapter.JSONFormat)

	err := NewListHandler(base).List(context.Background(), ListRequest{Sort: "stars"})
	require.ErrorIs(t, err, domain.ErrInvalidSortMode)
	assert.Zero(t, buf.Len())
}

func TestListPromptAdjustsState(t *testing.T) {
	t.Parallel()

	base, buf := newBase(staticSource(testRecords()), cliAdapter.JSONFormat)

	var offered []string

	err := NewListHandler(base).List(context.Background(), ListRequest{
		Prompt: func(languages []string, state *catalog.ViewState) error {
			offered = languages
			state.Language = "Rust"
			state.Sort = catalog.AlphabeticalAscending

			return nil
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Rust"}, offered)

	result := decodeList(t, buf)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "name", result.Sort)
}

func TestListFetchFailureStillRenders(t *testing.T) {
	t.Parallel()

	source := domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return nil, errFeedDown
	})
	base, buf := newBase(source, cliAdapter.TextFormat)

	err := NewListHandler(base).List(context.Background(), ListRequest{})
	require.ErrorIs(t, err, errFeedDown)

	assert.Contains(t, buf.String(), "Repositories could not be loaded.")
	assert.Contains(t, buf.String(), "showing 0–0 of 0")
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	base, buf := newBase(staticSource(testRecords()), cliAdapter.JSONFormat)
	require.NoError(t, NewListHandler(base).Languages(context.Background()))

	var result domain.LanguagesResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	require.Len(t, result.Languages, 2)
	assert.Equal(t, "Go", result.Languages[0].Name)
	assert.Equal(t, "#00ADD8", result.Languages[0].Color)
	assert.Equal(t, "Rust", result.Languages[1].Name)
}

func TestServeRouter(t *testing.T) {
	t.Parallel()

	base, _ := newBase(staticSource(testRecords()), cliAdapter.JSONFormat)
	router := NewServeHandler(base).Router(context.Background())

	recorder := httptest.NewRecorder()
	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/api/v1/repositories?page=2", nil)
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var result domain.ListResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Page)
	assert.Len(t, result.Repositories, 2)
}
