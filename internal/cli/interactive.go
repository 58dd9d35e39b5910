// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/janderssonse/repodeck/internal/catalog"
)

// AllLanguagesOption labels the option that clears the language filter.
const AllLanguagesOption = "◌ All languages"

func languageOptions(languages []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(languages)+1)
	options = append(options, huh.NewOption(AllLanguagesOption, ""))

	for _, language := range languages {
		options = append(options, huh.NewOption("● "+language, language))
	}

	return options
}

func sortOptions() []huh.Option[catalog.SortMode] {
	modes := catalog.SortModes()
	options := make([]huh.Option[catalog.SortMode], 0, len(modes))

	for _, mode := range modes {
		options = append(options, huh.NewOption(mode.Label(), mode))
	}

	return options
}

// promptListState asks for the language and sort mode of a list run.
func promptListState(languages []string, state *catalog.ViewState) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("◈ Language").
				Description("Only show repositories written in this language").
				Options(languageOptions(languages)...).
				Value(&state.Language),
			huh.NewSelect[catalog.SortMode]().
				Title("◈ Sort").
				Options(sortOptions()...).
				Value(&state.Sort),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	state.Page = 1

	return nil
}
