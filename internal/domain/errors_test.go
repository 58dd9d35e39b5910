// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrorFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		exitError       *domain.ExitError
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "with underlying error",
			exitError:       domain.NewExitError(11, "Fetch failed", domain.ErrNetworkFailure),
			expectedCode:    11,
			expectedMessage: "Fetch failed: network failure",
		},
		{
			name:            "without underlying error",
			exitError:       domain.NewExitError(2, "Invalid usage", nil),
			expectedCode:    2,
			expectedMessage: "Invalid usage",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expectedMessage, tc.exitError.Error())
			assert.Equal(t, tc.expectedCode, tc.exitError.Code)
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("list: %w", domain.NewExitError(3, "Bad config", domain.ErrInvalidConfig))

	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	var exitErr *domain.ExitError

	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestGetErrorInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"network sentinel", fmt.Errorf("fetch: %w", domain.ErrNetworkFailure), "Network connection failed"},
		{"network text", errors.New("dial tcp: connection refused"), "Network connection failed"},
		{"status sentinel", fmt.Errorf("%w: 503", domain.ErrUnexpectedStatus), "Repository service returned an error"},
		{"sort sentinel", fmt.Errorf("%w: %q", domain.ErrInvalidSortMode, "stars"), "Unknown sort mode"},
		{"config sentinel", fmt.Errorf("%w: bad", domain.ErrInvalidConfig), "Configuration could not be used"},
		{"toml text", errors.New("toml: expected character ="), "Configuration could not be used"},
		{"unknown", errors.New("boom"), "Operation failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			info := domain.GetErrorInfo(tc.err, false)
			assert.Equal(t, tc.message, info.Message)
			assert.NotEmpty(t, info.Suggestions)
			assert.False(t, info.ShowDetails)
		})
	}
}

func TestGetErrorInfoNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.ErrorInfo{}, domain.GetErrorInfo(nil, true))
}

func TestFormatErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("non-verbose shows first suggestion", func(t *testing.T) {
		t.Parallel()

		msg := domain.FormatErrorMessage(domain.ErrNetworkFailure, false)

		assert.Equal(t, "✗ Network connection failed (Check your internet connection)", msg)
	})

	t.Run("verbose shows details and all suggestions", func(t *testing.T) {
		t.Parallel()

		msg := domain.FormatErrorMessage(errors.New("boom"), true)

		assert.Contains(t, msg, "✗ Operation failed")
		assert.Contains(t, msg, "Technical details: boom")
		assert.Contains(t, msg, "Suggestions:")
		assert.Contains(t, msg, "• Run with --verbose for more details")
	})
}
