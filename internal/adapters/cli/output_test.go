// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/janderssonse/repodeck/internal/catalog"
	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPresenter() display.Presenter {
	return display.NewPresenter(display.DefaultPalette(), display.NewFormatter("en-US"))
}

func testView(count int, page int) catalog.View {
	records := make([]domain.Repository, 0, count)
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.Local)

	for i := 1; i <= count; i++ {
		records = append(records, domain.Repository{
			Name:      fmt.Sprintf("repo-%02d", i),
			Language:  "Go",
			UpdatedAt: base.AddDate(0, 0, -i),
			URL:       fmt.Sprintf("https://github.com/example/repo-%02d", i),
		})
	}

	state := catalog.DefaultViewState()
	state.SetPage(page)

	view, _ := catalog.Derive(records, state, catalog.Rules{})

	return view
}

func TestOutputAdapter_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		format       OutputFormat
		quiet        bool
		message      string
		data         any
		wantContains string
		wantEmpty    bool
	}{
		{
			name:         "text format with message",
			format:       TextFormat,
			message:      "Config written",
			wantContains: "Config written",
		},
		{
			name:      "quiet mode suppresses message",
			format:    TextFormat,
			quiet:     true,
			message:   "Config written",
			wantEmpty: true,
		},
		{
			name:         "JSON format with data",
			format:       JSONFormat,
			message:      "ignored",
			data:         map[string]string{"path": "/tmp/config.toml"},
			wantContains: `"path"`,
		},
		{
			name:         "JSON format without data shows message",
			format:       JSONFormat,
			message:      "No data to show",
			wantContains: "No data to show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			adapter := NewOutputAdapterWithWriter(&buf, tt.format, tt.quiet)
			require.NoError(t, adapter.Success(tt.message, tt.data))

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.wantContains)
			}
		})
	}
}

func TestOutputAdapter_ErrorAndInfo(t *testing.T) {
	t.Parallel()

	var text, jsonBuf bytes.Buffer

	require.NoError(t, NewOutputAdapterWithWriter(&text, TextFormat, false).Error("boom"))
	require.NoError(t, NewOutputAdapterWithWriter(&jsonBuf, JSONFormat, false).Info("hello"))

	assert.Equal(t, "Error: boom\n", text.String())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.Equal(t, "hello", decoded["info"])
}

func TestOutputAdapter_ListText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, TextFormat, false)
	require.NoError(t, adapter.List(testPresenter().ListResult(testView(12, 1))))

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, output, "repo-01")
	assert.Contains(t, output, "repo-10")
	assert.NotContains(t, output, "repo-11")
	assert.Contains(t, output, "showing 1–10 of 12 · Showing: Recent")
	assert.Contains(t, output, "No description available")
	assert.Equal(t, "[1] 2 »", lines[len(lines)-1])
}

func TestOutputAdapter_ListTextEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	view := testView(0, 1)
	view.FetchFailed = true

	require.NoError(t, NewOutputAdapterWithWriter(&buf, TextFormat, false).List(testPresenter().ListResult(view)))

	output := buf.String()
	assert.NotContains(t, output, "NAME")
	assert.Contains(t, output, "Repositories could not be loaded.")
	assert.Contains(t, output, "showing 0–0 of 0")
}

func TestOutputAdapter_ListJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, JSONFormat, false)
	require.NoError(t, adapter.List(testPresenter().ListResult(testView(12, 2))))

	var result domain.ListResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Len(t, result.Repositories, 2)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, "showing 11–12 of 12", result.Count)
	assert.Equal(t, "#00ADD8", result.Repositories[0].Color)
}

func TestOutputAdapter_ListMarkdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	adapter := NewOutputAdapterWithWriter(&buf, MarkdownFormat, false).WithMarkdownStyle("notty")
	require.NoError(t, adapter.List(testPresenter().ListResult(testView(3, 1))))

	output := buf.String()
	assert.Contains(t, output, "repo-01")
	assert.Contains(t, output, "repo-03")
	assert.Contains(t, output, "showing 1–3 of 3")
}

func TestOutputAdapter_Languages(t *testing.T) {
	t.Parallel()

	result := testPresenter().Languages([]string{"Go", "Rust"})

	var text bytes.Buffer
	require.NoError(t, NewOutputAdapterWithWriter(&text, TextFormat, false).Languages(result))
	assert.Contains(t, text.String(), "#00ADD8")
	assert.Contains(t, text.String(), display.NeutralColor)

	var jsonBuf bytes.Buffer
	require.NoError(t, NewOutputAdapterWithWriter(&jsonBuf, JSONFormat, false).Languages(result))

	var decoded domain.LanguagesResult
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Total)
}

func TestListRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	renderer := NewListRenderer(NewOutputAdapterWithWriter(&buf, TextFormat, false), testPresenter())
	renderer.Render(testView(2, 1))

	require.NoError(t, renderer.Err())
	assert.Contains(t, buf.String(), "showing 1–2 of 2")
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{input: "", want: TextFormat},
		{input: "text", want: TextFormat},
		{input: "JSON", want: JSONFormat},
		{input: "md", want: MarkdownFormat},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.input)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrUnsupportedFormat)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
