// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package display

import "errors"

// ErrInvalidColor is returned for palette colors that are not #rrggbb.
var ErrInvalidColor = errors.New("invalid color")
