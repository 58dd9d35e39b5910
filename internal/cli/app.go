// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the repodeck command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	cliAdapter "github.com/janderssonse/repodeck/internal/adapters/cli"
	"github.com/janderssonse/repodeck/internal/adapters/network"
	"github.com/janderssonse/repodeck/internal/cli/handlers"
	"github.com/janderssonse/repodeck/internal/config"
	"github.com/janderssonse/repodeck/internal/console"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/logging"
	"github.com/janderssonse/repodeck/internal/platform"
	"github.com/janderssonse/repodeck/internal/tui"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Generic failure (catch-all)
	ExitUsageError    = 2  // Invalid command line usage
	ExitConfigError   = 3  // Configuration file error
	ExitNotFoundError = 5  // Requested command not found
	ExitNetworkError  = 11 // Repository feed could not be fetched
	ExitTimeoutError  = 13 // Operation timed out
	ExitInterrupt     = 14 // User interrupted (Ctrl+C)
)

// DefaultAddr is where serve listens unless --addr is given.
const DefaultAddr = ":8080"

// Version is set at build time with -ldflags "-X".
var Version = "dev" //nolint:gochecknoglobals

// SourceFactory builds the repository source for the loaded config.
type SourceFactory func(cfg config.Config, timeout time.Duration, logger *slog.Logger) domain.RepositorySource

// Option customizes a CLI, mostly for tests.
type Option func(*CLI)

// WithSource replaces the HTTP repository feed.
func WithSource(source domain.RepositorySource) Option {
	return func(app *CLI) {
		app.newSource = func(config.Config, time.Duration, *slog.Logger) domain.RepositorySource {
			return source
		}
	}
}

// WithStdout redirects command results.
func WithStdout(w io.Writer) Option {
	return func(app *CLI) {
		app.stdout = w
	}
}

// WithConsole replaces the console used for status messages.
func WithConsole(out *console.OutputState) Option {
	return func(app *CLI) {
		app.out = out
	}
}

// CLI holds the parsed global flags and builds every command.
type CLI struct {
	app        *cli.Command
	verbose    bool
	json       bool
	quiet      bool
	plain      bool
	color      string        // "auto", "always", "never"
	timeout    time.Duration // overrides the configured timeout when positive
	configPath string

	stdout    io.Writer
	out       *console.OutputState
	logger    *slog.Logger
	newSource SourceFactory
}

// NewCLI creates the command tree.
func NewCLI(opts ...Option) *CLI {
	app := &CLI{
		stdout:    os.Stdout,
		out:       console.DefaultOutput,
		logger:    slog.Default(),
		newSource: feedSource,
	}

	for _, opt := range opts {
		opt(app)
	}

	app.app = &cli.Command{
		Name:        "repodeck",
		Usage:       "Browse a developer portfolio's repositories from the terminal",
		Version:     GetVersion(),
		HideVersion: true,
		Suggest:     true,
		Description: `Fetches the portfolio's repository list once and lets you search, filter
by language, sort and page through it.

EXAMPLES:
  repodeck                                  Open the terminal UI
  repodeck list --search api --page 2       Print one page of the list
  repodeck list --language Go --json        Machine-readable output
  repodeck languages --markdown             Languages with their colors and icons
  repodeck serve --addr :8080               Serve the list as a JSON API`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show debug logging on stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress non-essential output",
				Aliases:     []string{"q"},
				Destination: &app.quiet,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output plain text without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       console.ColorAuto,
				Destination: &app.color,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "timeout for fetching repositories (0 = use config)",
				Destination: &app.timeout,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to the config file",
				Value:       platform.ConfigFile(),
				Destination: &app.configPath,
			},
		},
		Before:   app.initConfig,
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// App returns the root command.
func App() *cli.Command {
	return NewCLI().app
}

// GetVersion returns the build version, falling back to module build info.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Version
}

func feedSource(cfg config.Config, timeout time.Duration, logger *slog.Logger) domain.RepositorySource {
	return network.NewRepositoryFeed(network.NewHTTPClient(timeout), cfg.Endpoint, logger)
}

func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createTUICommand(),
		app.createListCommand(),
		app.createLanguagesCommand(),
		app.createServeCommand(),
		app.createConfigCommand(),
		app.createVersionCommand(),
	}
}

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive terminal UI",
		Description: `Sections: About, Projects and Help. Switch with H/L or tab.

In Projects: / search, s sort, l language picker, [ ] previous/next page,
1-9 jump to page, g/G first/last page, q quit.

Logs are written to ` + platform.LogFile() + `.`,
		Action: app.handleTUIAction,
	}
}

func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print one page of the repository list",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "case-insensitive name filter"},
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "exact language filter"},
			&cli.StringFlag{Name: "sort", Value: "recent", Usage: "recent, oldest or name"},
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "page number, clamped into range"},
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"m"}, Usage: "render markdown for the terminal"},
			&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "choose language and sort interactively"},
		},
		Action: app.handleListAction,
	}
}

func (app *CLI) createLanguagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "Print the language catalog with colors and icons",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"m"}, Usage: "render markdown for the terminal"},
		},
		Action: app.handleLanguagesAction,
	}
}

func (app *CLI) createServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the repository list as a JSON API",
		Description: `Endpoints:
  GET /health
  GET /api/v1/repositories?search=&language=&sort=&page=
  GET /api/v1/languages`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: DefaultAddr, Usage: "listen address"},
		},
		Action: app.handleServeAction,
	}
}

func (app *CLI) createConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the config file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a config file with the default settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "overwrite an existing file"},
				},
				Action: app.handleConfigInit,
			},
			{
				Name:   "path",
				Usage:  "Print the config file path",
				Action: app.handleConfigPath,
			},
			{
				Name:   "show",
				Usage:  "Print the effective settings",
				Action: app.handleConfigShow,
			},
		},
	}
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			if app.json {
				app.out.JSONResult("success", map[string]any{"version": GetVersion()})

				return nil
			}

			app.out.PlainValue(GetVersion())

			return nil
		},
	}
}

// initConfig validates the global flags and sets up output and logging.
func (app *CLI) initConfig(ctx context.Context, _ *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	switch app.color {
	case console.ColorAuto, console.ColorAlways, console.ColorNever:
	default:
		return ctx, domain.NewExitError(ExitUsageError, "invalid --color value: must be auto, always, or never", nil)
	}

	if app.timeout < 0 {
		return ctx, domain.NewExitError(ExitUsageError, "invalid --timeout value: must not be negative", nil)
	}

	app.out.SetMode(app.verbose, app.json, app.plain)
	app.out.Color = app.color

	app.logger = logging.Setup(logging.Options{
		Verbose: app.verbose,
		JSON:    app.json,
		Writer:  app.out.Err,
	})

	return ctx, nil
}

// defaultAction launches the TUI when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return domain.NewExitError(ExitNotFoundError,
			fmt.Sprintf("'%s' is not a command. Run 'repodeck --help' to see available commands.", cmd.Args().First()), nil)
	}

	return app.handleTUIAction(ctx, cmd)
}

func (app *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return config.Config{}, domain.NewExitError(ExitConfigError, domain.FormatErrorMessage(err, app.verbose), err)
	}

	return cfg, nil
}

// newBase builds the shared handler state from the loaded config.
func (app *CLI) newBase(cfg config.Config, markdown bool) (*handlers.BaseHandler, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, domain.NewExitError(ExitConfigError, domain.FormatErrorMessage(err, app.verbose), err)
	}

	if app.timeout > 0 {
		timeout = app.timeout
	}

	palette, err := cfg.Palette()
	if err != nil {
		return nil, domain.NewExitError(ExitConfigError, domain.FormatErrorMessage(err, app.verbose), err)
	}

	format := cliAdapter.TextFormat

	switch {
	case app.json:
		format = cliAdapter.JSONFormat
	case markdown:
		format = cliAdapter.MarkdownFormat
	}

	output := cliAdapter.NewOutputAdapterWithWriter(app.stdout, format, app.quiet)
	if !app.out.ColorEnabled() {
		output.WithMarkdownStyle("notty")
	}

	return &handlers.BaseHandler{
		Verbose:   app.verbose,
		Timeout:   timeout,
		Output:    output,
		Source:    app.newSource(cfg, timeout, app.logger),
		Excluded:  cfg.ExcludedRepository,
		Presenter: display.NewPresenter(palette, display.NewFormatter(cfg.Locale)),
		Logger:    app.logger,
	}, nil
}

func (app *CLI) handleTUIAction(ctx context.Context, _ *cli.Command) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	var logWriter io.Writer = io.Discard

	logFile, err := logging.OpenLogFile(platform.LogFile())
	if err != nil {
		app.out.Warningf("logging disabled: %v", err)
	} else {
		defer func() { _ = logFile.Close() }()

		logWriter = logFile
	}

	app.logger = logging.Setup(logging.Options{Verbose: app.verbose, Writer: logWriter})

	base, err := app.newBase(cfg, false)
	if err != nil {
		return err
	}

	aboutFile := ""
	if cfg.AboutFile != "" {
		aboutFile = platform.ExpandPath(cfg.AboutFile)
	}

	err = tui.Launch(ctx, tui.Dependencies{
		Source:    base.Source,
		Excluded:  base.Excluded,
		Timeout:   base.Timeout,
		Presenter: base.Presenter,
		AboutFile: aboutFile,
		Logger:    app.logger,
	})
	if err != nil {
		if app.verbose {
			return domain.NewExitError(ExitGeneralError, fmt.Sprintf("Failed to launch TUI: %v", err), err)
		}

		return domain.NewExitError(ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
	}

	return nil
}

func (app *CLI) handleListAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	base, err := app.newBase(cfg, cmd.Bool("markdown"))
	if err != nil {
		return err
	}

	request := handlers.ListRequest{
		Search:   cmd.String("search"),
		Language: cmd.String("language"),
		Sort:     cmd.String("sort"),
		Page:     int(cmd.Int("page")),
	}

	if cmd.Bool("interactive") {
		if app.json || app.plain {
			return domain.NewExitError(ExitUsageError, "--interactive cannot be combined with --json or --plain", nil)
		}

		request.Prompt = promptListState
	}

	return app.fail(handlers.NewListHandler(base).List(ctx, request))
}

func (app *CLI) handleLanguagesAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	base, err := app.newBase(cfg, cmd.Bool("markdown"))
	if err != nil {
		return err
	}

	return app.fail(handlers.NewListHandler(base).Languages(ctx))
}

func (app *CLI) handleServeAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	base, err := app.newBase(cfg, false)
	if err != nil {
		return err
	}

	addr := cmd.String("addr")
	app.out.Progressf("Serving %s on %s", cfg.Endpoint, addr)

	return app.fail(handlers.NewServeHandler(base).Serve(ctx, addr))
}

func (app *CLI) handleConfigInit(_ context.Context, cmd *cli.Command) error {
	if err := config.WriteDefault(app.configPath, cmd.Bool("force")); err != nil {
		return app.fail(err)
	}

	if app.json {
		app.out.JSONResult("success", map[string]any{"path": app.configPath})

		return nil
	}

	app.out.Successf("Wrote %s", app.configPath)

	return nil
}

func (app *CLI) handleConfigPath(_ context.Context, _ *cli.Command) error {
	if app.json {
		app.out.JSONResult("success", map[string]any{
			"path":   app.configPath,
			"exists": platform.FileExists(app.configPath),
		})

		return nil
	}

	app.out.PlainValue(app.configPath)

	return nil
}

func (app *CLI) handleConfigShow(_ context.Context, _ *cli.Command) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	if app.json {
		app.out.JSONResult("success", map[string]any{"config": cfg})

		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return app.fail(err)
	}

	if _, err := app.stdout.Write(data); err != nil {
		return app.fail(fmt.Errorf("failed to write config: %w", err))
	}

	return nil
}

// fail maps err to an ExitError with a user-friendly message.
func (app *CLI) fail(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	return domain.NewExitError(ExitCodeFor(err), domain.FormatErrorMessage(err, app.verbose), err)
}

// ExitCodeFor returns the process exit code for err.
func ExitCodeFor(err error) int {
	var exitErr *domain.ExitError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeoutError
	case errors.Is(err, context.Canceled):
		return ExitInterrupt
	case errors.Is(err, domain.ErrInvalidSortMode):
		return ExitUsageError
	case errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrConfigExists),
		errors.Is(err, domain.ErrConfigLocked):
		return ExitConfigError
	case errors.Is(err, domain.ErrNetworkFailure),
		errors.Is(err, domain.ErrUnexpectedStatus):
		return ExitNetworkError
	default:
		return ExitGeneralError
	}
}
