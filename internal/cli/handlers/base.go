// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package handlers implements CLI command execution logic.
package handlers

import (
	"context"
	"log/slog"
	"time"

	cliAdapter "github.com/janderssonse/repodeck/internal/adapters/cli"
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
)

// BaseHandler provides common functionality for all command handlers.
type BaseHandler struct {
	Verbose   bool
	Timeout   time.Duration
	Output    *cliAdapter.OutputAdapter
	Source    domain.RepositorySource
	Excluded  string
	Presenter display.Presenter
	Logger    *slog.Logger
}

// WithTimeout applies timeout to context if configured.
func (h *BaseHandler) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.Timeout > 0 {
		return context.WithTimeout(ctx, h.Timeout)
	}

	return ctx, func() {}
}

// GetOutput returns the output port for CLI rendering.
func (h *BaseHandler) GetOutput() domain.OutputPort {
	return h.Output
}

func (h *BaseHandler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}

	return h.Logger
}

// load fetches the records once into a controller that renders nothing by
// itself. The fetch error, if any, is returned alongside the loaded
// controller, which then holds an empty list.
func (h *BaseHandler) load(ctx context.Context) (*catalog.Controller, error) {
	ctx, cancel := h.WithTimeout(ctx)
	defer cancel()

	controller := catalog.NewController(h.Source, nil, catalog.Options{
		Excluded:  h.Excluded,
		Collation: h.Presenter.Formatter.Tag(),
		Logger:    h.logger(),
	})

	result := controller.Fetch(ctx)
	controller.Apply(result)

	return controller, result.Err
}
