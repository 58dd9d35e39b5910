// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/repodeck/internal/tui/styles"
)

//go:embed about.md
var defaultAbout string

// About renders the About markdown fragment.
type About struct {
	styles   *styles.Styles
	width    int
	height   int
	path     string
	content  string
	loaded   bool
	failed   bool
	viewport viewport.Model
	keyMap   AboutKeyMap
}

// AboutKeyMap defines key bindings for the about section.
type AboutKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
}

// DefaultAboutKeyMap returns the default key bindings.
func DefaultAboutKeyMap() AboutKeyMap {
	return AboutKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "projects"),
		),
	}
}

// NewAbout creates the about model. An empty path selects the built-in text.
func NewAbout(styleConfig *styles.Styles, path string) *About {
	return &About{
		styles:   styleConfig,
		path:     path,
		viewport: viewport.New(80, 20),
		keyMap:   DefaultAboutKeyMap(),
	}
}

// Init loads the markdown fragment.
func (m *About) Init() tea.Cmd {
	return LoadAbout(m.path)
}

// LoadAbout returns a command reading the fragment at path, or the built-in
// text when path is empty.
func LoadAbout(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return AboutLoadedMsg{Content: defaultAbout}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return AboutLoadedMsg{Err: fmt.Errorf("failed to read about file: %w", err)}
		}

		return AboutLoadedMsg{Content: string(data)}
	}
}

// Update handles messages for the About model.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *About) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AboutLoadedMsg:
		m.loaded = true
		m.failed = msg.Err != nil
		m.content = msg.Content
		m.render()

		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-lipgloss.Height(m.renderFooter()))
		m.render()

		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Next) {
			return m, func() tea.Msg {
				return NavigateMsg{Screen: ProjectsScreen}
			}
		}

		var cmd tea.Cmd

		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	return m, nil
}

// View renders the about section.
func (m *About) View() string {
	var builder strings.Builder

	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderFooter())

	return builder.String()
}

// Failed reports whether the fragment could not be loaded.
func (m *About) Failed() bool {
	return m.failed
}

func (m *About) render() {
	if !m.loaded {
		return
	}

	if m.failed {
		m.viewport.SetContent(m.styles.ErrorText.Render(FailedContentMsg))

		return
	}

	wrap := 80
	if m.width > 0 && m.width < wrap {
		wrap = m.width
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.viewport.SetContent(m.content)

		return
	}

	rendered, err := renderer.Render(m.content)
	if err != nil {
		rendered = m.content
	}

	m.viewport.SetContent(rendered)
}

func (m *About) renderFooter() string {
	return RenderFooter(m.styles, m.width, FooterActions(m.keyMap.Up, m.keyMap.Down, m.keyMap.Next), true)
}
