// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/platform"
)

const defaultHeader = `# repodeck configuration
#
# [colors] and [icons] override the language palette, for example:
#
# [colors]
# Rust = "#dea584"
#
# [icons]
# Rust = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/rust/rust-original.svg"

`

// WriteDefault writes the default config to path. An existing file is only
// replaced when force is set. Concurrent writers are rejected with
// domain.ErrConfigLocked.
func WriteDefault(path string, force bool) error {
	if err := platform.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(path + ".lock")

	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}

	if !locked {
		return fmt.Errorf("%w: %s", domain.ErrConfigLocked, path)
	}

	defer func() { _ = lock.Unlock() }()

	if platform.FileExists(path) && !force {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}

	data, err := Default().Marshal()
	if err != nil {
		return err
	}

	if err := platform.WriteFileAtomic(path, append([]byte(defaultHeader), data...), 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
