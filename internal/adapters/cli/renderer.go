// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
)

// ListRenderer writes every view it receives through an OutputAdapter.
// It implements catalog.Renderer; the first write error is kept for Err.
type ListRenderer struct {
	output    *OutputAdapter
	presenter display.Presenter
	err       error
}

// NewListRenderer creates a renderer writing to output.
func NewListRenderer(output *OutputAdapter, presenter display.Presenter) *ListRenderer {
	return &ListRenderer{output: output, presenter: presenter}
}

// Render writes view.
func (r *ListRenderer) Render(view catalog.View) {
	if err := r.output.List(r.presenter.ListResult(view)); err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first write error.
func (r *ListRenderer) Err() error {
	return r.err
}
