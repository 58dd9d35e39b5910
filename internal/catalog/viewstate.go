// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

// ViewState holds the user-controlled inputs of the derived view.
type ViewState struct {
	Search   string   // case-insensitive name substring
	Language string   // exact language match, empty for all languages
	Sort     SortMode // ordering of the filtered records
	Page     int      // 1-based, clamped after every derivation
}

// DefaultViewState returns the state a fresh session starts with.
func DefaultViewState() ViewState {
	return ViewState{Sort: RecentFirst, Page: 1}
}

// SetSearch replaces the search term and returns to the first page.
func (s *ViewState) SetSearch(term string) {
	s.Search = term
	s.Page = 1
}

// SelectLanguage sets the language filter; the empty string means all
// languages. Returns to the first page.
func (s *ViewState) SelectLanguage(language string) {
	s.Language = language
	s.Page = 1
}

// CycleSort advances to the next sort mode and returns to the first page.
func (s *ViewState) CycleSort() {
	s.Sort = s.Sort.Next()
	s.Page = 1
}

// SetPage moves to page without touching the other fields.
func (s *ViewState) SetPage(page int) {
	s.Page = page
}
