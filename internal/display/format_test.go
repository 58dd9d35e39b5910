// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package display_test

import (
	"testing"
	"time"

	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestCountMessage(t *testing.T) {
	t.Parallel()

	formatter := display.NewFormatter("en-US")

	assert.Equal(t, "showing 1–10 of 12", formatter.CountMessage(1, 10, 12))
	assert.Equal(t, "showing 0–0 of 0", formatter.CountMessage(0, 0, 0))
	assert.Equal(t, "showing 1,001–1,010 of 2,500", formatter.CountMessage(1001, 1010, 2500))
}

func TestFormatterDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.March, 7, 12, 0, 0, 0, time.Local)

	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "3/7/2025"},
		{"", "3/7/2025"},
		{"not a locale", "3/7/2025"},
		{"en-GB", "07/03/2025"},
		{"pt-BR", "07/03/2025"},
		{"de-DE", "7.3.2025"},
		{"sv", "2025-03-07"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, display.NewFormatter(tt.locale).Date(date), "locale %q", tt.locale)
	}

	assert.Equal(t, display.UnknownDate, display.NewFormatter("en-US").Date(time.Time{}))
}

func TestFormatterTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pt-BR", display.NewFormatter("pt-BR").Tag().String())
	assert.Equal(t, "en-US", display.NewFormatter("").Tag().String())
	assert.Equal(t, "en-US", display.NewFormatter("not a locale").Tag().String())
	assert.Equal(t, language.Und, display.Formatter{}.Tag())
}

func TestDescription(t *testing.T) {
	t.Parallel()

	assert.Equal(t, display.DescriptionPlaceholder, display.Description(domain.Repository{Name: "x"}))
	assert.Equal(t, "A CLI", display.Description(domain.Repository{Description: "A CLI"}))
}
