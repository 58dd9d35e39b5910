// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import "github.com/janderssonse/repodeck/internal/domain"

// ItemsPerPage is the fixed page size of the repository list.
const ItemsPerPage = 10

// Page is one slice of an ordered record list.
type Page struct {
	Records    []domain.Repository
	Current    int // clamped page number that was actually sliced
	TotalPages int // never less than 1
	Total      int // length of the ordered input
	PerPage    int
}

// TotalPages returns the number of pages needed for count items.
// An empty list still occupies one page.
func TotalPages(count, perPage int) int {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}

	pages := (count + perPage - 1) / perPage

	return max(1, pages)
}

// ClampPage moves page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	return min(max(page, 1), max(totalPages, 1))
}

// Paginate slices records into the requested page, clamping the page number
// into range. The returned Current is the page that was sliced.
func Paginate(records []domain.Repository, page, perPage int) Page {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}

	totalPages := TotalPages(len(records), perPage)
	current := ClampPage(page, totalPages)

	start := min((current-1)*perPage, len(records))
	end := min(current*perPage, len(records))

	return Page{
		Records:    records[start:end:end],
		Current:    current,
		TotalPages: totalPages,
		Total:      len(records),
		PerPage:    perPage,
	}
}

// Bounds returns the 1-based positions of the first and last record on the
// page, or 0 and 0 when the page is empty.
func (p Page) Bounds() (int, int) {
	if len(p.Records) == 0 {
		return 0, 0
	}

	start := (p.Current-1)*p.PerPage + 1

	return start, start + len(p.Records) - 1
}
