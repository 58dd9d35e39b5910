// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"context"
	"log/slog"
	"slices"

	"github.com/janderssonse/repodeck/internal/domain"
	"golang.org/x/text/language"
)

// Renderer materializes a derived view. Implementations are the terminal UI,
// the CLI output adapter and test recorders.
type Renderer interface {
	Render(view View)
}

// RenderFunc adapts a plain function to Renderer.
type RenderFunc func(view View)

// Render calls f.
func (f RenderFunc) Render(view View) {
	f(view)
}

// Options configures a Controller.
type Options struct {
	Excluded  string       // repository name hidden from every view
	PerPage   int          // page size, ItemsPerPage when zero
	Collation language.Tag // A–Z ordering, root collation when zero
	Logger    *slog.Logger // slog.Default() when nil
}

// LoadResult is the outcome of the initial fetch.
type LoadResult struct {
	Records []domain.Repository
	Err     error
}

// Controller owns the fetched records and the view state of one session.
// It is not safe for concurrent use; a single event loop drives it.
type Controller struct {
	source   domain.RepositorySource
	renderer Renderer
	rules    Rules
	logger   *slog.Logger

	records     []domain.Repository
	languages   []string
	state       ViewState
	view        View
	loading     bool
	fetchFailed bool
}

// NewController creates a controller in its loading state. Nothing is fetched
// until Load, or Fetch followed by Apply, is called.
func NewController(source domain.RepositorySource, renderer Renderer, opts Options) *Controller {
	if renderer == nil {
		renderer = RenderFunc(func(View) {})
	}

	if opts.PerPage <= 0 {
		opts.PerPage = ItemsPerPage
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	state := DefaultViewState()

	return &Controller{
		source:   source,
		renderer: renderer,
		rules: Rules{
			Excluded:  opts.Excluded,
			PerPage:   opts.PerPage,
			Collation: opts.Collation,
		},
		logger:  opts.Logger,
		state:   state,
		loading: true,
		view: View{
			Page:       1,
			TotalPages: 1,
			PerPage:    opts.PerPage,
			State:      state,
			Loading:    true,
		},
	}
}

// Load fetches the records and populates the controller. A failed fetch
// leaves the record list empty.
func (c *Controller) Load(ctx context.Context) {
	c.Apply(c.Fetch(ctx))
}

// Fetch queries the source without touching controller state, so it may run
// off the event loop. Failures are logged and reported in the result.
func (c *Controller) Fetch(ctx context.Context) LoadResult {
	records, err := c.source.FetchRepositories(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to fetch repositories", "error", err)

		return LoadResult{Err: err}
	}

	c.logger.DebugContext(ctx, "fetched repositories", "count", len(records))

	return LoadResult{Records: records}
}

// Apply installs the fetch result, builds the language catalog and renders
// the first view. Only the first call has an effect.
func (c *Controller) Apply(result LoadResult) {
	if !c.loading {
		return
	}

	c.loading = false
	c.fetchFailed = result.Err != nil

	if result.Err != nil {
		c.records = []domain.Repository{}
	} else {
		c.records = slices.Clone(result.Records)
	}

	c.languages = BuildLanguages(c.records, c.rules.Excluded)
	c.refresh(false)
}

// SetSearch updates the search term.
func (c *Controller) SetSearch(term string) {
	c.state.SetSearch(term)
	c.refresh(false)
}

// SelectLanguage filters by language; the empty string selects all languages.
func (c *Controller) SelectLanguage(language string) {
	c.state.SelectLanguage(language)
	c.refresh(false)
}

// CycleSort advances the sort mode.
func (c *Controller) CycleSort() {
	c.state.CycleSort()
	c.refresh(false)
}

// GoToPage navigates to page. It reports false, and does nothing, when page
// is out of range or already current.
func (c *Controller) GoToPage(page int) bool {
	if page < 1 || page > c.view.TotalPages || page == c.state.Page {
		return false
	}

	c.state.SetPage(page)
	c.refresh(true)

	return true
}

// NextPage navigates forward one page.
func (c *Controller) NextPage() bool {
	return c.GoToPage(c.state.Page + 1)
}

// PrevPage navigates back one page.
func (c *Controller) PrevPage() bool {
	return c.GoToPage(c.state.Page - 1)
}

// FirstPage navigates to page one.
func (c *Controller) FirstPage() bool {
	return c.GoToPage(1)
}

// LastPage navigates to the last page.
func (c *Controller) LastPage() bool {
	return c.GoToPage(c.view.TotalPages)
}

// Restore replaces the whole view state at once, clamping its page. Used when
// the state comes from outside an interactive session, such as CLI flags.
func (c *Controller) Restore(state ViewState) {
	c.state = state
	c.refresh(false)
}

// View returns the most recently derived view.
func (c *Controller) View() View {
	return c.view
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	return c.state
}

// Rules returns the derivation rules the controller was created with.
func (c *Controller) Rules() Rules {
	return c.rules
}

// Languages returns the language catalog built from the fetched records.
func (c *Controller) Languages() []string {
	return slices.Clone(c.languages)
}

// Records returns the fetched records.
func (c *Controller) Records() []domain.Repository {
	return slices.Clone(c.records)
}

// Loading reports whether the fetch result has not been applied yet.
func (c *Controller) Loading() bool {
	return c.loading
}

func (c *Controller) refresh(scrollToTop bool) {
	view, state := Derive(c.records, c.state, c.rules)

	view.Languages = c.languages
	view.Loading = c.loading
	view.FetchFailed = c.fetchFailed
	view.ScrollToTop = scrollToTop

	c.state = state
	c.view = view
	c.renderer.Render(view)
}
