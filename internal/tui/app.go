// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/logging"
	"github.com/janderssonse/repodeck/internal/tui/models"
	"github.com/janderssonse/repodeck/internal/tui/styles"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents the TUI sections.
type Screen int

// Section constants, in tab order.
const (
	AboutScreen    Screen = Screen(models.AboutScreen)
	ProjectsScreen Screen = Screen(models.ProjectsScreen)
	HelpScreen     Screen = Screen(models.HelpScreen)
)

// Dependencies are the collaborators the sections are built from.
type Dependencies struct {
	Source    domain.RepositorySource
	Excluded  string
	PerPage   int
	Timeout   time.Duration
	Presenter display.Presenter
	AboutFile string
	Logger    *slog.Logger
}

// App represents the main TUI application following tree-of-models pattern.
// It renders the section tabs and delegates content to section models.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	deps          Dependencies
	currentScreen Screen
	contentModel  tea.Model
	models        map[Screen]tea.Model // Cache of initialized models
	ctx           context.Context
	logger        *slog.Logger

	quitting bool
}

// NewApp creates a new TUI application showing the About section.
func NewApp(ctx context.Context, deps Dependencies) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	app := &App{
		styles:        styles.New(),
		deps:          deps,
		currentScreen: AboutScreen,
		models:        make(map[Screen]tea.Model),
		ctx:           logging.WithComponent(ctx, "tui"),
		logger:        deps.Logger,
	}

	about := models.NewAbout(app.styles, deps.AboutFile)
	app.contentModel = about
	app.models[AboutScreen] = about

	return app
}

// Run starts the TUI application.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.contentModel.Init()
}

// Update implements the tea.Model interface with global navigation handling.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a, a.resizeContent()
	case models.NavigateMsg:
		return a.navigateToScreen(Screen(msg.Screen))
	case tea.KeyMsg:
		return a.handleKeyMessage(msg)
	case models.RepositoriesLoadedMsg, spinner.TickMsg:
		return a, a.forward(ProjectsScreen, msg)
	case models.AboutLoadedMsg:
		return a, a.forward(AboutScreen, msg)
	default:
		var cmd tea.Cmd

		a.contentModel, cmd = a.contentModel.Update(msg)

		return a, cmd
	}
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), a.contentModel.View())
}

// GetCurrentScreen returns the current screen (for testing).
func (a *App) GetCurrentScreen() Screen {
	return a.currentScreen
}

// GetContentModel returns the current content model (for testing).
func (a *App) GetContentModel() tea.Model {
	return a.contentModel
}

// Launch starts the interactive TUI.
func Launch(ctx context.Context, deps Dependencies) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(ctx, deps).Run(ctx)
}

// forward delivers msg to the cached model of screen, whether or not it is
// the section being shown. Messages for sections never opened are dropped.
func (a *App) forward(screen Screen, msg tea.Msg) tea.Cmd {
	model, ok := a.models[screen]
	if !ok {
		return nil
	}

	updated, cmd := model.Update(msg)
	a.models[screen] = updated

	if screen == a.currentScreen {
		a.contentModel = updated
	}

	return cmd
}

//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) handleKeyMessage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		a.quitting = true

		return a, tea.Quit
	}

	if capturer, ok := a.contentModel.(models.InputCapturer); ok && capturer.CapturesInput() {
		return a.delegate(msg)
	}

	switch msg.String() {
	case "q":
		a.quitting = true

		return a, tea.Quit
	case "shift+h", "H":
		return a.navigateBy(-1, false)
	case "shift+l", "L":
		return a.navigateBy(1, false)
	case "shift+tab":
		return a.navigateBy(-1, true)
	case "tab":
		return a.navigateBy(1, true)
	case "?":
		return a.navigateToScreen(HelpScreen)
	default:
		return a.delegate(msg)
	}
}

//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)
	a.models[a.currentScreen] = a.contentModel

	return a, cmd
}

// navigateBy moves direction sections from the current one. Tab navigation
// wraps around, H/L stops at the ends.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) navigateBy(direction int, wrap bool) (tea.Model, tea.Cmd) {
	target := int(a.currentScreen) + direction

	if wrap {
		target = (target + models.SectionCount) % models.SectionCount
	}

	if target < 0 || target >= models.SectionCount {
		return a, nil
	}

	return a.navigateToScreen(Screen(target))
}

// navigateToScreen shows a section, creating and initializing it on first
// use. The Projects section starts its fetch when it is first created.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) navigateToScreen(target Screen) (tea.Model, tea.Cmd) {
	if target == a.currentScreen {
		return a, nil
	}

	a.logger.DebugContext(a.ctx, "switching section", "section", models.SectionTitle(int(target)))

	var cmds []tea.Cmd

	model, cached := a.models[target]
	if !cached {
		model = a.createModelForScreen(target)
		a.models[target] = model
		cmds = append(cmds, model.Init())
	}

	a.currentScreen = target
	a.contentModel = model
	cmds = append(cmds, a.resizeContent())

	return a, tea.Batch(cmds...)
}

//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) createModelForScreen(screen Screen) tea.Model {
	switch screen {
	case ProjectsScreen:
		return models.NewProjects(a.ctx, a.styles, a.deps.Source, models.ProjectsOptions{
			Excluded:  a.deps.Excluded,
			PerPage:   a.deps.PerPage,
			Timeout:   a.deps.Timeout,
			Presenter: a.deps.Presenter,
			Logger:    a.logger,
		})
	case HelpScreen:
		return models.NewHelp(a.styles)
	default:
		return models.NewAbout(a.styles, a.deps.AboutFile)
	}
}

// resizeContent sends the content area size to the current section.
func (a *App) resizeContent() tea.Cmd {
	if a.width <= 0 || a.height <= 0 {
		return nil
	}

	contentHeight := max(0, a.height-lipgloss.Height(a.renderHeader()))

	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(tea.WindowSizeMsg{
		Width:  a.width,
		Height: contentHeight,
	})
	a.models[a.currentScreen] = a.contentModel

	return cmd
}

func (a *App) renderHeader() string {
	tabs := make([]string, 0, models.SectionCount+1)
	tabs = append(tabs, a.styles.Title.Render("repodeck")+"  ")

	for screen := range models.SectionCount {
		style := a.styles.Tab
		if Screen(screen) == a.currentScreen {
			style = a.styles.ActiveTab
		}

		tabs = append(tabs, style.Render(models.SectionTitle(screen)))
	}

	return a.styles.Header.Render(lipgloss.JoinHorizontal(lipgloss.Center, tabs...))
}
