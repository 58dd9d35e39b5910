// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/stringutil"
	"github.com/janderssonse/repodeck/internal/tui/styles"
)

// Icons prefixed to the count line and the sort toggle.
const (
	CountIcon = display.CountIcon
	SortIcon  = display.SortIcon
)

// ProjectsKeyMap defines key bindings for the projects section.
type ProjectsKeyMap struct {
	Search    key.Binding
	Blur      key.Binding
	Sort      key.Binding
	Language  key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	JumpPage  key.Binding
	Up        key.Binding
	Down      key.Binding
}

// DefaultProjectsKeyMap returns the default key bindings.
func DefaultProjectsKeyMap() ProjectsKeyMap {
	return ProjectsKeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "done"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "last"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// ProjectsOptions configures the projects section.
type ProjectsOptions struct {
	Excluded  string
	PerPage   int
	Timeout   time.Duration
	Presenter display.Presenter
	Logger    *slog.Logger
}

// Projects is the repository list section. It owns the list controller and
// is the renderer the controller draws through.
type Projects struct {
	styles     *styles.Styles
	ctx        context.Context //nolint:containedctx // bounds the single fetch command
	timeout    time.Duration
	presenter  display.Presenter
	controller *catalog.Controller
	view       catalog.View
	width      int
	height     int
	search     textinput.Model
	spinner    spinner.Model
	viewport   viewport.Model
	picker     *LanguagePicker
	keyMap     ProjectsKeyMap
}

// NewProjects creates the projects section in its loading state.
func NewProjects(ctx context.Context, styleConfig *styles.Styles, source domain.RepositorySource, opts ProjectsOptions) *Projects {
	search := textinput.New()
	search.Placeholder = "Search repositories"
	search.Prompt = "🔍 "
	search.CharLimit = 100
	search.Width = 30

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styleConfig.Primary)

	model := &Projects{
		styles:    styleConfig,
		ctx:       ctx,
		timeout:   opts.Timeout,
		presenter: opts.Presenter,
		search:    search,
		spinner:   spin,
		viewport:  viewport.New(80, 20),
		picker:    NewLanguagePicker(styleConfig, opts.Presenter.Palette),
		keyMap:    DefaultProjectsKeyMap(),
	}

	model.controller = catalog.NewController(source, model, catalog.Options{
		Excluded:  opts.Excluded,
		PerPage:   opts.PerPage,
		Collation: opts.Presenter.Formatter.Tag(),
		Logger:    opts.Logger,
	})
	model.view = model.controller.View()

	return model
}

// Init starts the spinner and the one fetch of the session.
func (m *Projects) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m *Projects) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx := m.ctx
		if m.timeout > 0 {
			var cancel context.CancelFunc

			ctx, cancel = context.WithTimeout(ctx, m.timeout)
			defer cancel()
		}

		return RepositoriesLoadedMsg{Result: m.controller.Fetch(ctx)}
	}
}

// Render implements catalog.Renderer.
func (m *Projects) Render(view catalog.View) {
	m.view = view
	m.viewport.SetContent(m.renderList())

	if view.ScrollToTop {
		m.viewport.GotoTop()
	}
}

// Update handles messages for the Projects model.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *Projects) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RepositoriesLoadedMsg:
		m.controller.Apply(msg.Result)

		return m, nil
	case spinner.TickMsg:
		if !m.controller.Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case tea.WindowSizeMsg:
		m.handleWindowSizeMsg(msg)

		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Projects) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.picker.IsOpen() {
		if language, ok := m.picker.HandleKey(msg); ok && language != m.view.State.Language {
			m.controller.SelectLanguage(language)
		}

		return nil
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	if m.controller.Loading() {
		return nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Search):
		return m.search.Focus()
	case key.Matches(msg, m.keyMap.Sort):
		m.controller.CycleSort()
	case key.Matches(msg, m.keyMap.Language):
		m.picker.Open(m.controller.Languages(), m.view.State.Language)
	case key.Matches(msg, m.keyMap.PrevPage):
		m.controller.PrevPage()
	case key.Matches(msg, m.keyMap.NextPage):
		m.controller.NextPage()
	case key.Matches(msg, m.keyMap.FirstPage):
		m.controller.FirstPage()
	case key.Matches(msg, m.keyMap.LastPage):
		m.controller.LastPage()
	case key.Matches(msg, m.keyMap.JumpPage):
		m.controller.GoToPage(int(msg.String()[0] - '0'))
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return cmd
	}

	return nil
}

func (m *Projects) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keyMap.Blur) {
		m.search.Blur()

		return nil
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)

	if value := m.search.Value(); value != m.view.State.Search {
		m.controller.SetSearch(value)
	}

	return cmd
}

func (m *Projects) handleWindowSizeMsg(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	chrome := lipgloss.Height(m.renderControls()) + lipgloss.Height(m.renderStatus()) +
		lipgloss.Height(m.renderPager()) + lipgloss.Height(m.renderFooter())

	m.viewport.Width = msg.Width
	m.viewport.Height = max(1, msg.Height-chrome)
	m.viewport.SetContent(m.renderList())
}

// CapturesInput reports whether the section owns every key press right now.
func (m *Projects) CapturesInput() bool {
	return m.search.Focused() || m.picker.IsOpen()
}

// Controller returns the list controller.
func (m *Projects) Controller() *catalog.Controller {
	return m.controller
}

// CurrentView returns the last view rendered.
func (m *Projects) CurrentView() catalog.View {
	return m.view
}

// SearchFocused reports whether the search input has focus.
func (m *Projects) SearchFocused() bool {
	return m.search.Focused()
}

// PickerOpen reports whether the language picker is expanded.
func (m *Projects) PickerOpen() bool {
	return m.picker.IsOpen()
}

// View renders the projects section.
func (m *Projects) View() string {
	var builder strings.Builder

	builder.WriteString(m.renderControls())
	builder.WriteString("\n")

	if m.view.Loading {
		builder.WriteString(m.spinner.View() + " " + m.styles.MutedText.Render(LoadingProjectsMsg))
		builder.WriteString("\n")
		builder.WriteString(m.renderFooter())

		return builder.String()
	}

	builder.WriteString(m.renderStatus())
	builder.WriteString("\n")

	if m.picker.IsOpen() {
		builder.WriteString(m.picker.View())
	} else {
		builder.WriteString(m.viewport.View())
	}

	if pager := m.renderPager(); pager != "" {
		builder.WriteString("\n")
		builder.WriteString(pager)
	}

	builder.WriteString("\n")
	builder.WriteString(m.renderFooter())

	return builder.String()
}

func (m *Projects) renderControls() string {
	state := m.view.State
	sortLabel := m.styles.PrimaryText.Render(SortIcon + " " + state.Sort.Label())

	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.search.View(), "   ",
		m.picker.ButtonLabel(state.Language), "   ",
		sortLabel,
	)
}

func (m *Projects) renderStatus() string {
	count := m.presenter.Formatter.CountMessage(m.view.Start, m.view.End, m.view.Total)

	return m.styles.Subtitle.Render(CountIcon + " " + count)
}

func (m *Projects) renderList() string {
	if m.view.Loading {
		return ""
	}

	if m.view.FetchFailed {
		return m.styles.WarningText.Render(FetchFailedMsg)
	}

	if len(m.view.Records) == 0 {
		return m.styles.MutedText.Render(NoResultsMsg)
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	cards := make([]string, 0, len(m.view.Records))
	for _, record := range m.view.Records {
		cards = append(cards, m.renderCard(m.presenter.Entry(record), width))
	}

	return strings.Join(cards, "\n")
}

func (m *Projects) renderCard(entry domain.RepositoryEntry, width int) string {
	textWidth := max(10, width-m.styles.Card.GetHorizontalFrameSize())

	name, body, footnote := m.styles.CardText(entry.Color)

	title := name.Render(stringutil.Truncate(entry.Name, textWidth/2)) + "  " +
		m.styles.Badge(entry.Language, entry.Color)
	description := body.Render(stringutil.Truncate(entry.Description, textWidth))
	meta := footnote.Render(
		stringutil.Truncate("Updated "+entry.Updated+"  "+entry.URL, textWidth),
	)

	return m.styles.Card.Render(strings.Join([]string{title, description, meta}, "\n"))
}

func (m *Projects) renderPager() string {
	controls := m.view.Pager()
	if len(controls) == 0 {
		return ""
	}

	buttons := make([]string, 0, len(controls))

	for _, control := range controls {
		style := m.styles.PagerButton

		switch {
		case control.Disabled:
			style = m.styles.PagerDisabled
		case control.Active:
			style = m.styles.PagerActive
		}

		buttons = append(buttons, style.Render(control.Label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m *Projects) renderFooter() string {
	if m.search.Focused() {
		return RenderFooter(m.styles, m.width, FooterActions(m.keyMap.Blur), false)
	}

	return RenderFooter(m.styles, m.width, FooterActions(
		m.keyMap.Search, m.keyMap.Sort, m.keyMap.Language,
		m.keyMap.PrevPage, m.keyMap.NextPage, m.keyMap.JumpPage,
	), true)
}
