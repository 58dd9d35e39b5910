// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/repodeck/internal/tui/styles"
)

// HelpSection represents a help documentation section.
type HelpSection struct {
	Title   string
	Content string
}

// Help represents the help section model.
type Help struct {
	styles         *styles.Styles
	width          int
	height         int
	sections       []HelpSection
	viewport       viewport.Model
	renderer       *glamour.TermRenderer
	currentSection int
	keyMap         HelpKeyMap
}

// HelpKeyMap defines key bindings for the help section.
type HelpKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding
	Back  key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous topic"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next topic"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "projects"),
		),
	}
}

func helpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Getting Started",
			Content: `# Getting Started

repodeck lists public repositories fetched from a portfolio backend and lets
you search, filter, sort and page through them.

| Key | Action |
|-----|--------|
| H / L, tab | Switch section |
| ? | This help |
| q | Quit |

The list is fetched once, the first time the **Projects** section opens.`,
		},
		{
			Title: "Projects",
			Content: `# Projects

| Key | Action |
|-----|--------|
| / | Focus search (enter or esc to leave) |
| s | Cycle sort: recent, oldest, A–Z |
| l | Open the language picker |
| [ / ] | Previous / next page |
| 1–9 | Jump to page |
| g / G | First / last page |
| ↑/↓ or j/k | Scroll the page |

Search matches repository names without regard to case. Changing the search,
language or sort always returns to the first page.

In the language picker use **j/k** to move, **enter** to select and **esc**
to close. Any other key closes it too.`,
		},
		{
			Title: "Configuration",
			Content: `# Configuration

Settings live in ` + "`$XDG_CONFIG_HOME/repodeck/config.toml`" + `.
Create one with ` + "`repodeck config init`" + `.

` + "```toml" + `
endpoint = "https://portfolio-repositories-backend.onrender.com/repositories"
excluded_repository = "SoaresCRF"
timeout = "30s"
locale = "en-US"

[colors]
Go = "#00ADD8"
` + "```" + `

Environment variables override the file:
` + "`REPODECK_ENDPOINT`, `REPODECK_EXCLUDED`, `REPODECK_TIMEOUT`, `REPODECK_LOCALE`" + `.
A ` + "`.env`" + ` file in the working directory is read as well.`,
		},
		{
			Title: "CLI Reference",
			Content: `# Command Line Interface

` + "```bash" + `
repodeck                          # same as repodeck tui
repodeck list --search api --sort name --page 2
repodeck list --language Go --json
repodeck list --interactive
repodeck languages --markdown
repodeck serve --addr :8080
repodeck config init
repodeck version
` + "```" + `

The HTTP API answers ` + "`GET /api/v1/repositories`" + ` with the same query
parameters as ` + "`list`" + `.`,
		},
	}
}

// NewHelp creates a new help model.
func NewHelp(styleConfig *styles.Styles) *Help {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer()
	}

	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary).
		Padding(0, 1)

	helpModel := &Help{
		styles:   styleConfig,
		sections: helpSections(),
		viewport: viewPort,
		renderer: renderer,
		keyMap:   DefaultHelpKeyMap(),
	}

	helpModel.updateContent()

	return helpModel
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	}

	return m, nil
}

// View renders the help section.
func (m *Help) View() string {
	var builder strings.Builder

	builder.WriteString(m.renderTopics())
	builder.WriteString("\n")
	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderFooter())

	return builder.String()
}

// CurrentTopic returns the title of the topic being shown.
func (m *Help) CurrentTopic() string {
	return m.sections[m.currentSection].Title
}

//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *Help) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back):
		return m, func() tea.Msg {
			return NavigateMsg{Screen: ProjectsScreen}
		}
	case key.Matches(msg, m.keyMap.Left):
		m.moveTopic(-1)
	case key.Matches(msg, m.keyMap.Right):
		m.moveTopic(1)
	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
	default:
		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Help) moveTopic(direction int) {
	next := m.currentSection + direction
	if next >= 0 && next < len(m.sections) {
		m.currentSection = next
		m.updateContent()
	}
}

//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *Help) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	verticalMargins := lipgloss.Height(m.renderTopics()) + lipgloss.Height(m.renderFooter()) +
		m.viewport.Style.GetVerticalFrameSize()

	m.viewport.Width = msg.Width - m.viewport.Style.GetHorizontalFrameSize()
	m.viewport.Height = max(1, msg.Height-verticalMargins)

	m.updateContent()

	return m, nil
}

func (m *Help) renderTopics() string {
	tabs := make([]string, 0, len(m.sections))

	for i, section := range m.sections {
		style := m.styles.Unselected.Faint(true)
		if i == m.currentSection {
			style = m.styles.Selected
		}

		tabs = append(tabs, style.MarginRight(1).Render(section.Title))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Help) renderFooter() string {
	return RenderFooter(m.styles, m.width, FooterActions(
		m.keyMap.Left, m.keyMap.Right, m.keyMap.Up, m.keyMap.Down, m.keyMap.Back,
	), false)
}

func (m *Help) updateContent() {
	section := m.sections[m.currentSection]

	rendered, err := m.renderer.Render(section.Content)
	if err != nil {
		rendered = section.Content
	}

	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}
