// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package display

import (
	"time"

	"github.com/janderssonse/repodeck/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DescriptionPlaceholder replaces a missing description.
	DescriptionPlaceholder = "No description available"
	// UnknownDate replaces an unparseable update time.
	UnknownDate = "unknown"
	// CountIcon prefixes the count message in the terminal UI.
	CountIcon = "📂"
	// SortIcon prefixes the sort toggle label in the terminal UI.
	SortIcon = "🗂️"
)

// dateFormats lists supported locales and their short date layouts.
// The first entry is the fallback.
var dateFormats = []struct { //nolint:gochecknoglobals
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.EuropeanPortuguese, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Swedish, "2006-01-02"},
	{language.Japanese, "2006/1/2"},
}

func dateMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(dateFormats))
	for _, format := range dateFormats {
		tags = append(tags, format.tag)
	}

	return language.NewMatcher(tags)
}

// Formatter renders locale-dependent text.
type Formatter struct {
	tag        language.Tag
	printer    *message.Printer
	dateLayout string
}

// NewFormatter creates a formatter for a BCP 47 locale such as "en-US" or
// "pt-BR". Unknown or empty locales fall back to American English.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.AmericanEnglish
	}

	_, index, _ := dateMatcher().Match(tag)

	return Formatter{
		tag:        tag,
		printer:    message.NewPrinter(tag),
		dateLayout: dateFormats[index].layout,
	}
}

// Tag returns the language the formatter was built for. Renderers pass it on
// as the collation of the A–Z sort.
func (f Formatter) Tag() language.Tag {
	return f.tag
}

// CountMessage returns "showing start–end of total" with locale digit grouping.
func (f Formatter) CountMessage(start, end, total int) string {
	return f.printer.Sprintf("showing %d–%d of %d", start, end, total)
}

// Date formats t as a short local date.
func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return UnknownDate
	}

	return t.Local().Format(f.dateLayout)
}

// Description returns the record description or the placeholder.
func Description(record domain.Repository) string {
	if !record.HasDescription() {
		return DescriptionPlaceholder
	}

	return record.Description
}
