// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Repository is one repository record as served by the repository feed.
// Records are immutable once fetched.
type Repository struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	UpdatedAt   time.Time `json:"updated_at"`
	URL         string    `json:"html_url"`
}

// HasDescription reports whether the feed supplied a non-empty description.
func (r Repository) HasDescription() bool {
	return r.Description != ""
}

// HasLanguage reports whether the feed supplied a primary language.
func (r Repository) HasLanguage() bool {
	return r.Language != ""
}

// UnmarshalJSON decodes a feed record. Missing or null fields decode to their
// zero values and an unparseable updated_at decodes to the zero time, so a
// partial record never fails the whole response.
func (r *Repository) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Language    *string `json:"language"`
		UpdatedAt   *string `json:"updated_at"`
		URL         *string `json:"html_url"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode repository: %w", err)
	}

	*r = Repository{
		Name:        deref(raw.Name),
		Description: deref(raw.Description),
		Language:    deref(raw.Language),
		UpdatedAt:   ParseTimestamp(deref(raw.UpdatedAt)),
		URL:         deref(raw.URL),
	}

	return nil
}

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{ //nolint:gochecknoglobals
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses the feed's updated_at value. It returns the zero time
// when the value is empty or in an unknown layout.
func ParseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
