// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"strconv"

	"github.com/janderssonse/repodeck/internal/domain"
	"golang.org/x/text/language"
)

// Rules are the inputs of a derivation that stay fixed for a session.
type Rules struct {
	Excluded  string       // repository name hidden from every view
	PerPage   int          // page size, ItemsPerPage when zero
	Collation language.Tag // A–Z ordering, root collation when zero
}

// View is the derived, render-ready state of the repository list.
type View struct {
	Records    []domain.Repository // records on the current page
	Page       int                 // clamped current page
	TotalPages int
	Total      int // records left after filtering
	Start      int // 1-based position of the first record shown, 0 when empty
	End        int // 1-based position of the last record shown, 0 when empty
	PerPage    int

	State     ViewState // state the view was derived from, page already clamped
	Languages []string  // language catalog for the selector

	Loading     bool // records have not arrived yet
	FetchFailed bool // the fetch failed and the list was replaced by an empty one
	ScrollToTop bool // page navigation asks the renderer to return to the list anchor
}

// Derive runs filter, sort and paginate over records for state. It returns
// the view together with the state whose page has been clamped into range.
func Derive(records []domain.Repository, state ViewState, rules Rules) (View, ViewState) {
	filtered := Filter(records, state.Search, state.Language, rules.Excluded)
	ordered := Sort(filtered, state.Sort, rules.Collation)
	page := Paginate(ordered, state.Page, rules.PerPage)

	state.Page = page.Current
	start, end := page.Bounds()

	return View{
		Records:    page.Records,
		Page:       page.Current,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		Start:      start,
		End:        end,
		PerPage:    page.PerPage,
		State:      state,
	}, state
}

// HasPrevious reports whether a previous page exists.
func (v View) HasPrevious() bool {
	return v.Page > 1
}

// HasNext reports whether a next page exists.
func (v View) HasNext() bool {
	return v.Page < v.TotalPages
}

// PagerControlKind distinguishes the controls of the pager.
type PagerControlKind int

// Pager control kinds.
const (
	PagerPrevious PagerControlKind = iota
	PagerNumber
	PagerNext
)

// PagerControl describes one pager button.
type PagerControl struct {
	Kind     PagerControlKind
	Label    string
	Target   int  // page the control navigates to
	Active   bool // the control is the current page
	Disabled bool // boundary control that cannot navigate
}

// Pager describes the pager for the view: previous, one control per page and
// next. It is empty when there is only one page.
func (v View) Pager() []PagerControl {
	if v.TotalPages <= 1 {
		return nil
	}

	controls := make([]PagerControl, 0, v.TotalPages+2)
	controls = append(controls, PagerControl{
		Kind:     PagerPrevious,
		Label:    "«",
		Target:   v.Page - 1,
		Disabled: !v.HasPrevious(),
	})

	for page := 1; page <= v.TotalPages; page++ {
		controls = append(controls, PagerControl{
			Kind:   PagerNumber,
			Label:  strconv.Itoa(page),
			Target: page,
			Active: page == v.Page,
		})
	}

	controls = append(controls, PagerControl{
		Kind:     PagerNext,
		Label:    "»",
		Target:   v.Page + 1,
		Disabled: !v.HasNext(),
	})

	return controls
}
