// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform resolves per-user paths and builds the process-wide HTTP client.
package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user config and state directories.
const AppName = "repodeck"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetXDGStateHome returns XDG state directory.
func GetXDGStateHome() string {
	return GetXDGStateHomeWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// GetXDGStateHomeWithEnv returns XDG state directory with custom environment override for testing.
func GetXDGStateHomeWithEnv(xdgStateHome string) string {
	if xdgStateHome != "" {
		return xdgStateHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}

	return ""
}

// ConfigFile returns the default config file location.
func ConfigFile() string {
	return ConfigFileWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// ConfigFileWithEnv returns the config file location under a custom XDG_CONFIG_HOME.
func ConfigFileWithEnv(xdgConfigHome string) string {
	return filepath.Join(GetXDGConfigHomeWithEnv(xdgConfigHome), AppName, "config.toml")
}

// LogFile returns the log file used while the terminal UI owns the screen.
func LogFile() string {
	return LogFileWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// LogFileWithEnv returns the log file location under a custom XDG_STATE_HOME.
func LogFileWithEnv(xdgStateHome string) string {
	return filepath.Join(GetXDGStateHomeWithEnv(xdgStateHome), AppName, AppName+".log")
}

// ExpandPath expands ~ and $XDG_CONFIG_HOME.
func ExpandPath(path string) string {
	return ExpandPathWithEnv(path, "")
}

// ExpandPathWithEnv expands paths with a custom XDG_CONFIG_HOME for testing.
func ExpandPathWithEnv(path, xdgConfigHome string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		configHome := xdgConfigHome
		if configHome == "" {
			configHome = GetXDGConfigHome()
		}

		return configHome + after
	}

	return path
}
