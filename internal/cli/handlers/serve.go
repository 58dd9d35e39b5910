// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janderssonse/repodeck/internal/server"
)

// ServeHandler runs the JSON API.
type ServeHandler struct {
	*BaseHandler
}

// NewServeHandler creates a serve handler.
func NewServeHandler(base *BaseHandler) *ServeHandler {
	return &ServeHandler{BaseHandler: base}
}

// Router fetches the records once and returns the API router over them.
// A failed fetch is logged and the API serves an empty, degraded list.
func (h *ServeHandler) Router(ctx context.Context) http.Handler {
	if !h.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	controller, err := h.load(ctx)
	if err != nil {
		h.logger().WarnContext(ctx, "serving an empty repository list", "error", err)
	}

	return server.NewRouter(server.NewCatalogHandler(controller, h.Presenter))
}

// Serve listens on addr until ctx is cancelled.
func (h *ServeHandler) Serve(ctx context.Context, addr string) error {
	return server.New(addr, h.Router(ctx)).Run(ctx)
}
