// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package server

import "github.com/gin-gonic/gin"

// CatalogRouter mounts the catalog endpoints on rg.
func CatalogRouter(rg *gin.RouterGroup, h *CatalogHandler) {
	rg.GET("/repositories", h.List)
	rg.GET("/languages", h.Languages)
}

// SetupRoutes mounts every endpoint on router.
func SetupRoutes(router *gin.Engine, h *CatalogHandler) {
	router.GET("/health", h.Health)

	CatalogRouter(router.Group("/api/v1"), h)
}

// NewRouter creates an engine with recovery and request logging.
func NewRouter(h *CatalogHandler) *gin.Engine {
	router := gin.New()
	router.Use(Recovery())
	router.Use(Logger())

	SetupRoutes(router, h)

	return router
}
