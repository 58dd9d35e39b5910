// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/tui/styles"
)

// AllLanguagesLabel names the picker option that clears the language filter.
const AllLanguagesLabel = "All languages"

// PickerKeyMap defines key bindings for the language picker popup.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultPickerKeyMap returns the default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// LanguagePicker is the popup that selects the language filter. Its first
// option is always "All languages", which selects the empty language.
type LanguagePicker struct {
	styles  *styles.Styles
	palette display.Palette
	options []string
	cursor  int
	open    bool
	keyMap  PickerKeyMap
}

// NewLanguagePicker creates a closed picker.
func NewLanguagePicker(styleConfig *styles.Styles, palette display.Palette) *LanguagePicker {
	return &LanguagePicker{
		styles:  styleConfig,
		palette: palette,
		keyMap:  DefaultPickerKeyMap(),
	}
}

// Open expands the picker over the language catalog with the cursor on current.
func (p *LanguagePicker) Open(languages []string, current string) {
	p.options = append([]string{""}, languages...)
	p.cursor = 0

	for i, option := range p.options {
		if option == current {
			p.cursor = i

			break
		}
	}

	p.open = true
}

// Close collapses the picker.
func (p *LanguagePicker) Close() {
	p.open = false
}

// IsOpen reports whether the popup is expanded.
func (p *LanguagePicker) IsOpen() bool {
	return p.open
}

// Highlighted returns the option under the cursor.
func (p *LanguagePicker) Highlighted() string {
	if len(p.options) == 0 {
		return ""
	}

	return p.options[p.cursor]
}

// HandleKey processes a key while the picker is open. It reports the chosen
// language and true when an option was selected. Keys the picker does not
// bind close it without a selection.
func (p *LanguagePicker) HandleKey(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, p.keyMap.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keyMap.Down):
		if p.cursor < len(p.options)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keyMap.Select):
		p.open = false

		return p.Highlighted(), true
	default:
		p.open = false
	}

	return "", false
}

// ButtonLabel renders the picker button for the selected language, followed
// by the file name of its icon.
func (p *LanguagePicker) ButtonLabel(language string) string {
	hint := p.palette.Hint(language)
	icon := p.styles.MutedText.Render(path.Base(hint.Icon))

	if language == "" {
		return p.styles.MutedText.Render("◌ "+AllLanguagesLabel+" ▾") + " " + icon
	}

	return p.styles.LanguageText(hint.Color).Render("● "+hint.Label+" ▾") + " " + icon
}

// View renders the popup.
func (p *LanguagePicker) View() string {
	if !p.open {
		return ""
	}

	lines := make([]string, 0, len(p.options)+2)

	for i, option := range p.options {
		label := "◌ " + AllLanguagesLabel
		style := p.styles.Unselected

		if option != "" {
			label = p.styles.LanguageText(p.palette.Color(option)).Render("●") + " " + option
		}

		if i == p.cursor {
			style = p.styles.Selected
		}

		lines = append(lines, style.Render(label))
	}

	if highlighted := p.Highlighted(); highlighted != "" {
		lines = append(lines, "", p.styles.MutedText.Render(p.palette.Icon(highlighted)))
	}

	lines = append(lines, "", p.styles.MutedText.Render(
		strings.Join([]string{"j/k move", "enter select", "esc close"}, " · "),
	))

	return p.styles.Popup.Render(strings.Join(lines, "\n"))
}
