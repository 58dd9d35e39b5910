// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package server exposes the derived repository list as a JSON API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
)

// ListQuery holds the query parameters of GET /api/v1/repositories.
type ListQuery struct {
	Search   string `form:"search"`
	Language string `form:"language"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
}

// CatalogHandler serves views derived from one immutable record set.
// Every request derives its own view, so no locking is needed.
type CatalogHandler struct {
	records     []domain.Repository
	languages   []string
	rules       catalog.Rules
	fetchFailed bool
	presenter   display.Presenter
}

// NewCatalogHandler creates a handler over the records, language catalog and
// derivation rules of a loaded controller.
func NewCatalogHandler(controller *catalog.Controller, presenter display.Presenter) *CatalogHandler {
	return &CatalogHandler{
		records:     controller.Records(),
		languages:   controller.Languages(),
		rules:       controller.Rules(),
		fetchFailed: controller.View().FetchFailed,
		presenter:   presenter,
	}
}

// List returns one page of the filtered, sorted list.
func (h *CatalogHandler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: page must be a number"})

		return
	}

	mode, err := catalog.ParseSortMode(query.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	state := catalog.DefaultViewState()
	state.SetSearch(query.Search)
	state.SelectLanguage(query.Language)
	state.Sort = mode

	if query.Page != 0 {
		state.SetPage(query.Page)
	}

	view, _ := catalog.Derive(h.records, state, h.rules)
	view.Languages = h.languages
	view.FetchFailed = h.fetchFailed

	c.JSON(http.StatusOK, h.presenter.ListResult(view))
}

// Languages returns the language catalog with colors and icons.
func (h *CatalogHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, h.presenter.Languages(h.languages))
}

// Health reports liveness and whether the feed was reachable at startup.
func (h *CatalogHandler) Health(c *gin.Context) {
	status := "ok"
	if h.fetchFailed {
		status = "degraded"
	}

	visible := catalog.Filter(h.records, "", "", h.rules.Excluded)

	c.JSON(http.StatusOK, gin.H{"status": status, "repositories": len(visible)})
}
