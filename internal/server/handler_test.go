// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const excluded = "SoaresCRF"

func testRecords() []domain.Repository {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	records := make([]domain.Repository, 0, 13)

	for i := 1; i <= 12; i++ {
		language := "Go"
		if i%3 == 0 {
			language = "Rust"
		}

		records = append(records, domain.Repository{
			Name:      fmt.Sprintf("repo-%02d", i),
			Language:  language,
			UpdatedAt: base.AddDate(0, 0, -i),
		})
	}

	return append(records, domain.Repository{Name: excluded, Language: "Kotlin", UpdatedAt: base})
}

func newRouter(t *testing.T, source domain.RepositorySource) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	controller := catalog.NewController(source, nil, catalog.Options{Excluded: excluded})
	controller.Load(context.Background())

	presenter := display.NewPresenter(display.DefaultPalette(), display.NewFormatter("en-US"))

	return server.NewRouter(server.NewCatalogHandler(controller, presenter))
}

func staticSource() domain.RepositorySource {
	return domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return testRecords(), nil
	})
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestListDefaults(t *testing.T) {
	t.Parallel()

	w := get(t, newRouter(t, staticSource()), "/api/v1/repositories")
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Len(t, result.Repositories, 10)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, "showing 1–10 of 12", result.Count)
	assert.Equal(t, "repo-01", result.Repositories[0].Name)

	for _, entry := range result.Repositories {
		assert.NotEqual(t, excluded, entry.Name)
	}
}

func TestListQueryParameters(t *testing.T) {
	t.Parallel()

	router := newRouter(t, staticSource())

	tests := []struct {
		name      string
		target    string
		wantTotal int
		wantFirst string
		wantPage  int
	}{
		{name: "language filter", target: "/api/v1/repositories?language=Rust", wantTotal: 4, wantFirst: "repo-03", wantPage: 1},
		{name: "search", target: "/api/v1/repositories?search=REPO-1", wantTotal: 3, wantFirst: "repo-10", wantPage: 1},
		{name: "oldest first", target: "/api/v1/repositories?sort=oldest", wantTotal: 12, wantFirst: "repo-12", wantPage: 1},
		{name: "second page", target: "/api/v1/repositories?page=2", wantTotal: 12, wantFirst: "repo-11", wantPage: 2},
		{name: "page is clamped", target: "/api/v1/repositories?page=99", wantTotal: 12, wantFirst: "repo-11", wantPage: 2},
		{name: "no matches", target: "/api/v1/repositories?search=abc", wantTotal: 0, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			var result domain.ListResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantPage, result.Page)

			if tt.wantFirst == "" {
				assert.Empty(t, result.Repositories)
				assert.Equal(t, "showing 0–0 of 0", result.Count)
			} else {
				assert.Equal(t, tt.wantFirst, result.Repositories[0].Name)
			}
		})
	}
}

func TestListNameSortUsesControllerCollation(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	source := domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return []domain.Repository{{Name: "Ärlig"}, {Name: "zeta"}}, nil
	})

	controller := catalog.NewController(source, nil, catalog.Options{Collation: language.Swedish})
	controller.Load(context.Background())

	presenter := display.NewPresenter(display.DefaultPalette(), display.NewFormatter("sv-SE"))
	router := server.NewRouter(server.NewCatalogHandler(controller, presenter))

	w := get(t, router, "/api/v1/repositories?sort=name")
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	require.Len(t, result.Repositories, 2)
	assert.Equal(t, "zeta", result.Repositories[0].Name)
	assert.Equal(t, "Ärlig", result.Repositories[1].Name)
}

func TestListRejectsBadQueries(t *testing.T) {
	t.Parallel()

	router := newRouter(t, staticSource())

	for _, target := range []string{
		"/api/v1/repositories?sort=stars",
		"/api/v1/repositories?page=two",
	} {
		w := get(t, router, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "error")
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	w := get(t, newRouter(t, staticSource()), "/api/v1/languages")
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.LanguagesResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	require.Equal(t, 2, result.Total)
	assert.Equal(t, "Go", result.Languages[0].Name)
	assert.Equal(t, "#00ADD8", result.Languages[0].Color)
	assert.Equal(t, "Rust", result.Languages[1].Name)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	w := get(t, newRouter(t, staticSource()), "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","repositories":12}`, w.Body.String())

	failing := domain.SourceFunc(func(context.Context) ([]domain.Repository, error) {
		return nil, errors.New("feed down")
	})

	w = get(t, newRouter(t, failing), "/health")
	assert.JSONEq(t, `{"status":"degraded","repositories":0}`, w.Body.String())

	w = get(t, newRouter(t, failing), "/api/v1/repositories")

	var result domain.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.FetchFailed)
	assert.Empty(t, result.Repositories)
}

func TestServerShutsDownWithContext(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := server.New(listener.Addr().String(), newRouter(t, staticSource()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Serve(ctx, listener) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
