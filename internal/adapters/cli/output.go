// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides output adapters for CLI operations.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/stringutil"
)

var (
	// ErrUnsupportedFormat is returned when an unsupported output format is requested.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Column widths of the text table.
const (
	nameWidth        = 32
	descriptionWidth = 48
	markdownWrap     = 80
)

// OutputAdapter implements domain.OutputPort for CLI output.
type OutputAdapter struct {
	writer        io.Writer
	format        OutputFormat
	quiet         bool
	markdownStyle string
}

// OutputFormat represents the output format type.
type OutputFormat int

const (
	// TextFormat outputs human-readable text.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
	// MarkdownFormat outputs markdown rendered for the terminal.
	MarkdownFormat
)

// NewOutputAdapter creates a new output adapter with the specified configuration.
func NewOutputAdapter(format OutputFormat, quiet bool) *OutputAdapter {
	return NewOutputAdapterWithWriter(os.Stdout, format, quiet)
}

// NewOutputAdapterWithWriter creates a new output adapter with a custom writer for testing.
func NewOutputAdapterWithWriter(writer io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// WithMarkdownStyle selects a glamour standard style ("dark", "light",
// "notty", ...) instead of detecting one from the terminal.
func (o *OutputAdapter) WithMarkdownStyle(style string) *OutputAdapter {
	o.markdownStyle = style

	return o
}

// Success outputs a success message with optional structured data.
func (o *OutputAdapter) Success(message string, data any) error {
	if o.quiet && data == nil {
		return nil
	}

	if o.format == JSONFormat && data != nil {
		return o.outputJSON(data)
	}

	if message != "" && !o.quiet {
		_, _ = fmt.Fprintln(o.writer, message)
	}

	return nil
}

// Error outputs an error message.
func (o *OutputAdapter) Error(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"error": message})
	}

	_, _ = fmt.Fprintf(o.writer, "Error: %s\n", message)

	return nil
}

// Info outputs an informational message.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"info": message})
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// Table outputs tabular data.
func (o *OutputAdapter) Table(headers []string, rows [][]string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]any{
			"headers": headers,
			"rows":    rows,
		})
	}

	w := tabwriter.NewWriter(o.writer, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))

	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("-", len(headers[i]))
	}

	_, _ = fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

// IsQuiet returns true if output should be suppressed.
func (o *OutputAdapter) IsQuiet() bool {
	return o.quiet
}

// List outputs one page of the repository list.
func (o *OutputAdapter) List(result domain.ListResult) error {
	switch o.format {
	case JSONFormat:
		return o.outputJSON(result)
	case MarkdownFormat:
		return o.outputMarkdown(listMarkdown(result))
	case TextFormat:
	}

	rows := make([][]string, 0, len(result.Repositories))
	for _, entry := range result.Repositories {
		rows = append(rows, []string{
			stringutil.Truncate(entry.Name, nameWidth),
			entry.Language,
			entry.Updated,
			stringutil.Truncate(entry.Description, descriptionWidth),
		})
	}

	if len(rows) > 0 {
		if err := o.Table([]string{"NAME", "LANGUAGE", "UPDATED", "DESCRIPTION"}, rows); err != nil {
			return err
		}
	}

	if o.quiet {
		return nil
	}

	if result.FetchFailed {
		_, _ = fmt.Fprintln(o.writer, "Repositories could not be loaded.")
	}

	_, _ = fmt.Fprintf(o.writer, "\n%s · %s\n", result.Count, result.SortLabel)

	if pager := pagerLine(result.Pager); pager != "" {
		_, _ = fmt.Fprintln(o.writer, pager)
	}

	return nil
}

// Languages outputs the language catalog.
func (o *OutputAdapter) Languages(result domain.LanguagesResult) error {
	switch o.format {
	case JSONFormat:
		return o.outputJSON(result)
	case MarkdownFormat:
		return o.outputMarkdown(languagesMarkdown(result))
	case TextFormat:
	}

	rows := make([][]string, 0, len(result.Languages))
	for _, language := range result.Languages {
		rows = append(rows, []string{language.Name, language.Color, language.Icon})
	}

	return o.Table([]string{"LANGUAGE", "COLOR", "ICON"}, rows)
}

func pagerLine(links []domain.PageLink) string {
	if len(links) == 0 {
		return ""
	}

	parts := make([]string, 0, len(links))

	for _, link := range links {
		switch {
		case link.Active:
			parts = append(parts, "["+link.Label+"]")
		case link.Disabled:
			continue
		default:
			parts = append(parts, link.Label)
		}
	}

	return strings.Join(parts, " ")
}

func listMarkdown(result domain.ListResult) string {
	var builder strings.Builder

	builder.WriteString("# Repositories\n\n")

	if result.FetchFailed {
		builder.WriteString("> Repositories could not be loaded.\n\n")
	}

	for _, entry := range result.Repositories {
		fmt.Fprintf(&builder, "## [%s](%s)\n\n%s\n\n`%s` · Updated on %s\n\n",
			entry.Name, entry.URL, entry.Description, entry.Language, entry.Updated)
	}

	fmt.Fprintf(&builder, "---\n\n*%s · %s · page %d of %d*\n", result.Count, result.SortLabel, result.Page, result.TotalPages)

	return builder.String()
}

func languagesMarkdown(result domain.LanguagesResult) string {
	var builder strings.Builder

	builder.WriteString("# Languages\n\n")

	for _, language := range result.Languages {
		fmt.Fprintf(&builder, "- ![%s](%s) **%s** `%s`\n", language.Name, language.Icon, language.Name, language.Color)
	}

	return builder.String()
}

func (o *OutputAdapter) outputMarkdown(markdown string) error {
	if o.quiet {
		return nil
	}

	style := glamour.WithAutoStyle()
	if o.markdownStyle != "" {
		style = glamour.WithStandardStyle(o.markdownStyle)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(markdownWrap))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(o.writer, rendered)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// outputJSON outputs data as JSON.
func (o *OutputAdapter) outputJSON(data any) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "markdown", "md":
		return MarkdownFormat, nil
	default:
		return TextFormat, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// OutputFromContext creates an OutputAdapter from CLI context flags.
func OutputFromContext(jsonFlag, markdownFlag, quietFlag bool) *OutputAdapter {
	format := TextFormat

	switch {
	case jsonFlag:
		format = JSONFormat
	case markdownFlag:
		format = MarkdownFormat
	}

	return NewOutputAdapter(format, quietFlag)
}
