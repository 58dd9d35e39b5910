// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logging configures the process-wide slog logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/janderssonse/repodeck/internal/platform"
)

// Options selects the handler and level.
type Options struct {
	Verbose bool      // debug level instead of info
	JSON    bool      // JSON records instead of key=value text
	Writer  io.Writer // os.Stderr when nil
}

// Setup installs a logger built from opts as the slog default and returns it.
func Setup(opts Options) *slog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if opts.Verbose {
		handlerOpts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if opts.JSON {
		handler = NewContextHandler(slog.NewJSONHandler(writer, handlerOpts))
	} else {
		handler = NewContextHandler(slog.NewTextHandler(writer, handlerOpts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// OpenLogFile opens path for appending, creating parent directories.
// The terminal UI logs here so records never reach the alternate screen.
func OpenLogFile(path string) (*os.File, error) {
	if err := platform.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

type contextKey string

const componentKey contextKey = "component"

// WithComponent tags every record logged with ctx with a component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// Component returns the component stored in ctx, or "".
func Component(ctx context.Context) string {
	if component, ok := ctx.Value(componentKey).(string); ok {
		return component
	}

	return ""
}

// ContextHandler adds context fields to each record.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps h.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: h}
}

// Handle adds the component, if any, and delegates.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if component := Component(ctx); component != "" {
		r.AddAttrs(slog.String("component", component))
	}

	return h.Handler.Handle(ctx, r) //nolint:wrapcheck
}

// WithAttrs keeps the wrapper around the derived handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the wrapper around the derived handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
