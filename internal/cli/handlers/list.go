// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"context"
	"fmt"

	cliAdapter "github.com/janderssonse/repodeck/internal/adapters/cli"
	"github.com/janderssonse/repodeck/internal/catalog"
)

// StatePrompt lets the user adjust the view state once the language
// catalog is known.
type StatePrompt func(languages []string, state *catalog.ViewState) error

// ListRequest holds the list command inputs.
type ListRequest struct {
	Search   string
	Language string
	Sort     string
	Page     int
	Prompt   StatePrompt // optional
}

// ListHandler renders one derived view of the repository list.
type ListHandler struct {
	*BaseHandler
}

// NewListHandler creates a list handler.
func NewListHandler(base *BaseHandler) *ListHandler {
	return &ListHandler{BaseHandler: base}
}

// List fetches the records, derives the requested view and writes it. When
// the fetch fails the empty view is still written and the fetch error is
// returned.
func (h *ListHandler) List(ctx context.Context, req ListRequest) error {
	mode, err := catalog.ParseSortMode(req.Sort)
	if err != nil {
		return err
	}

	controller, fetchErr := h.load(ctx)

	state := catalog.ViewState{
		Search:   req.Search,
		Language: req.Language,
		Sort:     mode,
		Page:     max(req.Page, 1),
	}

	if req.Prompt != nil && fetchErr == nil {
		if err := req.Prompt(controller.Languages(), &state); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
	}

	controller.Restore(state)

	renderer := cliAdapter.NewListRenderer(h.Output, h.Presenter)
	renderer.Render(controller.View())

	if err := renderer.Err(); err != nil {
		return err
	}

	if fetchErr != nil {
		return fmt.Errorf("failed to load repositories: %w", fetchErr)
	}

	return nil
}

// Languages writes the language catalog.
func (h *ListHandler) Languages(ctx context.Context) error {
	controller, fetchErr := h.load(ctx)

	if err := h.Output.Languages(h.Presenter.Languages(controller.Languages())); err != nil {
		return err
	}

	if fetchErr != nil {
		return fmt.Errorf("failed to load repositories: %w", fetchErr)
	}

	return nil
}
