// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package display

import (
	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/domain"
)

// Presenter turns derived views into the payloads shared by the CLI output
// and the HTTP API.
type Presenter struct {
	Palette   Palette
	Formatter Formatter
}

// NewPresenter creates a presenter.
func NewPresenter(palette Palette, formatter Formatter) Presenter {
	return Presenter{Palette: palette, Formatter: formatter}
}

// Entry applies display hints to one record.
func (p Presenter) Entry(record domain.Repository) domain.RepositoryEntry {
	hint := p.Palette.Hint(record.Language)

	return domain.RepositoryEntry{
		Name:            record.Name,
		URL:             record.URL,
		Description:     Description(record),
		Language:        hint.Label,
		Color:           hint.Color,
		BadgeBackground: BadgeBackground(hint.Color),
		Updated:         p.Formatter.Date(record.UpdatedAt),
		UpdatedAt:       record.UpdatedAt,
	}
}

// ListResult converts a derived view.
func (p Presenter) ListResult(view catalog.View) domain.ListResult {
	entries := make([]domain.RepositoryEntry, 0, len(view.Records))
	for _, record := range view.Records {
		entries = append(entries, p.Entry(record))
	}

	var pager []domain.PageLink
	for _, control := range view.Pager() {
		pager = append(pager, domain.PageLink{
			Label:    control.Label,
			Page:     control.Target,
			Active:   control.Active,
			Disabled: control.Disabled,
		})
	}

	return domain.ListResult{
		Repositories: entries,
		Count:        p.Formatter.CountMessage(view.Start, view.End, view.Total),
		Page:         view.Page,
		TotalPages:   view.TotalPages,
		Total:        view.Total,
		Start:        view.Start,
		End:          view.End,
		Search:       view.State.Search,
		Language:     view.State.Language,
		Sort:         view.State.Sort.String(),
		SortLabel:    view.State.Sort.Label(),
		Pager:        pager,
		FetchFailed:  view.FetchFailed,
	}
}

// Languages converts a language catalog.
func (p Presenter) Languages(languages []string) domain.LanguagesResult {
	entries := make([]domain.LanguageEntry, 0, len(languages))
	for _, language := range languages {
		hint := p.Palette.Hint(language)
		entries = append(entries, domain.LanguageEntry{
			Name:  language,
			Color: hint.Color,
			Icon:  hint.Icon,
		})
	}

	return domain.LanguagesResult{Languages: entries, Total: len(entries)}
}
