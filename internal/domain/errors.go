// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors.
var (
	ErrNetworkFailure   = errors.New("network failure")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidSortMode  = errors.New("invalid sort mode")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigExists     = errors.New("configuration file already exists")
	ErrConfigLocked     = errors.New("configuration file is locked by another process")
)

// ExitError carries a process exit code alongside a user-facing message.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

type errorMatcher struct {
	target   error
	patterns []string
	info     ErrorInfo
}

// errorMatchers are checked in order; sentinel targets win over text patterns.
func errorMatchers() []errorMatcher {
	return []errorMatcher{
		{
			target:   ErrUnexpectedStatus,
			patterns: []string{"status"},
			info: ErrorInfo{
				Message:     "Repository service returned an error",
				Suggestions: []string{"Check the endpoint in your config", "Try again in a few moments"},
			},
		},
		{
			target:   ErrNetworkFailure,
			patterns: []string{"network", "connection", "timeout", "no such host", "deadline exceeded"},
			info: ErrorInfo{
				Message:     "Network connection failed",
				Suggestions: []string{"Check your internet connection", "Increase --timeout"},
			},
		},
		{
			target:   ErrInvalidSortMode,
			patterns: []string{"sort"},
			info: ErrorInfo{
				Message:     "Unknown sort mode",
				Suggestions: []string{"Use one of: recent, oldest, name"},
			},
		},
		{
			target:   ErrInvalidConfig,
			patterns: []string{"toml", "config"},
			info: ErrorInfo{
				Message:     "Configuration could not be used",
				Suggestions: []string{"Recreate it with 'repodeck config init --force'", "Run 'repodeck config path' to find it"},
			},
		},
	}
}

// GetErrorInfo analyzes an error and returns user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	matchers := errorMatchers()

	for _, matcher := range matchers {
		if errors.Is(err, matcher.target) {
			info := matcher.info
			info.ShowDetails = verbose

			return info
		}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range matchers {
		for _, pattern := range matcher.patterns {
			if strings.Contains(errStr, pattern) {
				info := matcher.info
				info.ShowDetails = verbose

				return info
			}
		}
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) > 0 && !verbose:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	case len(info.Suggestions) > 0:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}
