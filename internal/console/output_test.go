// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffered(o *OutputState) (*OutputState, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	o.Out = &stdout
	o.Err = &stderr

	return o, &stdout, &stderr
}

func TestOutputStateSetMode(t *testing.T) {
	t.Parallel()

	o := &OutputState{}

	o.SetMode(true, false, true)
	assert.True(t, o.Verbose)
	assert.False(t, o.JSON)
	assert.True(t, o.Plain)

	o.SetMode(false, true, false)
	assert.False(t, o.Verbose)
	assert.True(t, o.JSON)
	assert.False(t, o.Plain)
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, (&OutputState{Color: ColorAlways, Plain: true}).ColorEnabled())
	assert.False(t, (&OutputState{Color: ColorNever}).ColorEnabled())
	assert.False(t, (&OutputState{JSON: true}).ColorEnabled())

	buffered, _, _ := newBuffered(&OutputState{})
	assert.False(t, buffered.ColorEnabled(), "a buffer is not a terminal")
}

func TestBold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Title", (&OutputState{Plain: true}).Bold("Title"))
	assert.Equal(t, "\033[1mTitle\033[0m", (&OutputState{Color: ColorAlways}).Bold("Title"))

	buffered, _, _ := newBuffered(&OutputState{})
	assert.Equal(t, "TITLE", buffered.Header("Title"))
}

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		state      OutputState
		call       func(*OutputState)
		wantStderr string
	}{
		{
			name:       "progress hidden unless verbose",
			call:       func(o *OutputState) { o.Progressf("fetching %s", "feed") },
			wantStderr: "",
		},
		{
			name:       "progress when verbose",
			state:      OutputState{Verbose: true},
			call:       func(o *OutputState) { o.Progressf("fetching %s", "feed") },
			wantStderr: "fetching feed\n",
		},
		{
			name:       "success",
			call:       func(o *OutputState) { o.Successf("wrote %d file", 1) },
			wantStderr: "✓ wrote 1 file\n",
		},
		{
			name:       "success hidden in JSON mode",
			state:      OutputState{JSON: true},
			call:       func(o *OutputState) { o.Successf("wrote") },
			wantStderr: "",
		},
		{
			name:       "warning",
			call:       func(o *OutputState) { o.Warningf("slow") },
			wantStderr: "⚠ slow\n",
		},
		{
			name:       "plain error",
			state:      OutputState{Plain: true},
			call:       func(o *OutputState) { o.Errorf("bad") },
			wantStderr: "error: bad\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := tt.state
			o, _, stderr := newBuffered(&state)

			tt.call(o)
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestErrorResultJSON(t *testing.T) {
	t.Parallel()

	o, stdout, stderr := newBuffered(&OutputState{JSON: true})
	o.ErrorResult(errors.New("feed down"), 69)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))

	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "feed down", decoded["error"])
	assert.InDelta(t, 69, decoded["code"], 0)
	assert.Equal(t, "✗ feed down\n", stderr.String())
}

func TestPlainOutput(t *testing.T) {
	t.Parallel()

	o, stdout, _ := newBuffered(&OutputState{Plain: true})
	o.PlainKeyValue("config", "/tmp/config.toml")
	o.PlainValue("done")

	assert.Equal(t, "config:/tmp/config.toml\ndone\n", stdout.String())
}
