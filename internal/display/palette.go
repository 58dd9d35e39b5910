// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package display holds the presentation hints shared by every renderer:
// language colors and icons, fallback labels, count messages and dates.
package display

import (
	"fmt"
	"maps"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// NeutralColor is used for languages without an entry in the palette.
	NeutralColor = "#6c757d"
	// UnknownLanguage labels records that carry no language.
	UnknownLanguage = "N/A"
	// BadgeAlpha is the hex alpha appended to a language color for badge backgrounds.
	BadgeAlpha = "20"

	iconBase = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"
	// FallbackIcon is used for languages without an icon.
	FallbackIcon = iconBase + "github/github-original.svg"
)

// defaultColors mirrors the GitHub linguist colors of the languages the feed usually carries.
func defaultColors() map[string]string {
	return map[string]string{
		"Java":       "#b07219",
		"Python":     "#3572A5",
		"JavaScript": "#f1e05a",
		"TypeScript": "#3178c6",
		"HTML":       "#e34c26",
		"CSS":        "#563d7c",
		"C":          "#555555",
		"C++":        "#f34b7d",
		"C#":         "#178600",
		"PHP":        "#4F5D95",
		"Swift":      "#ffac45",
		"Kotlin":     "#A97BFF",
		"Go":         "#00ADD8",
		"Ruby":       "#701516",
		"Shell":      "#89e051",
	}
}

func defaultIcons() map[string]string {
	slugs := map[string]string{
		"Java":       "java",
		"Python":     "python",
		"JavaScript": "javascript",
		"TypeScript": "typescript",
		"HTML":       "html5",
		"CSS":        "css3",
		"C":          "c",
		"C++":        "cplusplus",
		"C#":         "csharp",
		"PHP":        "php",
		"Swift":      "swift",
		"Kotlin":     "kotlin",
		"Go":         "go",
		"Ruby":       "ruby",
		"Shell":      "bash",
	}

	icons := make(map[string]string, len(slugs))
	for language, slug := range slugs {
		icons[language] = iconBase + slug + "/" + slug + "-original.svg"
	}

	return icons
}

// Hint is the display information for one language.
type Hint struct {
	Label string
	Color string
	Icon  string
}

// Palette maps language names to colors and icon URLs.
type Palette struct {
	colors map[string]string
	icons  map[string]string
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	return Palette{colors: defaultColors(), icons: defaultIcons()}
}

// NewPalette returns the built-in palette with colors and icons overridden
// per language. Colors must be #rrggbb.
func NewPalette(colors, icons map[string]string) (Palette, error) {
	palette := DefaultPalette()

	for language, color := range colors {
		if !ValidColor(color) {
			return Palette{}, fmt.Errorf("color %q for %s: %w", color, language, ErrInvalidColor)
		}
	}

	maps.Copy(palette.colors, colors)
	maps.Copy(palette.icons, icons)

	return palette, nil
}

// Color returns the color of language, or NeutralColor when unmapped.
func (p Palette) Color(language string) string {
	if color, ok := p.colors[language]; ok {
		return color
	}

	return NeutralColor
}

// Icon returns the icon URL of language, or FallbackIcon when unmapped.
func (p Palette) Icon(language string) string {
	if icon, ok := p.icons[language]; ok {
		return icon
	}

	return FallbackIcon
}

// Hint returns label, color and icon for language.
func (p Palette) Hint(language string) Hint {
	return Hint{
		Label: LanguageLabel(language),
		Color: p.Color(language),
		Icon:  p.Icon(language),
	}
}

// LanguageLabel returns language, or UnknownLanguage when it is empty.
func LanguageLabel(language string) string {
	if language == "" {
		return UnknownLanguage
	}

	return language
}

// ValidColor reports whether color is a #rrggbb hex color.
func ValidColor(color string) bool {
	_, ok := parseHex(color)

	return ok
}

// BadgeBackground returns color with the badge alpha appended (#rrggbbaa).
func BadgeBackground(color string) string {
	return color + BadgeAlpha
}

// Tint blends color over base with the badge alpha and returns an opaque
// #rrggbb, for back ends that cannot draw translucent colors.
func Tint(color, base string) string {
	fg, okFg := parseHex(color)
	bg, okBg := parseHex(base)

	if !okFg || !okBg {
		return base
	}

	alpha, _ := strconv.ParseUint(BadgeAlpha, 16, 8)

	return bg.BlendRgb(fg, float64(alpha)/255).Hex()
}

// parseHex accepts only the long #rrggbb form.
func parseHex(color string) (colorful.Color, bool) {
	if len(color) != len("#rrggbb") {
		return colorful.Color{}, false
	}

	parsed, err := colorful.Hex(color)
	if err != nil {
		return colorful.Color{}, false
	}

	return parsed, true
}
