package domain

import (
	"errors"
	"fmt"
)

// Theme is the persisted UI theme preference
type Theme string

// available themes
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrUnknownTheme is returned for a stored value that is neither light nor dark
var ErrUnknownTheme = errors.New("unknown theme")

// glyphs shown on the theme toggle control
const (
	GlyphEnableDark  = "🌙"
	GlyphEnableLight = "☀️"
)

// ParseTheme converts a stored value to Theme, empty value is light
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, "":
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("%w %q", ErrUnknownTheme, s)
	}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Glyph returns the toggle glyph offering the other theme
func (t Theme) Glyph() string {
	if t == ThemeDark {
		return GlyphEnableLight
	}
	return GlyphEnableDark
}

func (t Theme) String() string { return string(t) }

// Appearance is the applied side of the theme: the dark attribute on the page and the toggle glyph
type Appearance struct {
	Dark  bool   `json:"dark"`
	Glyph string `json:"glyph"`
}

// DefaultAppearance is the light state before any theme is applied
func DefaultAppearance() Appearance {
	return Appearance{Dark: false, Glyph: GlyphEnableDark}
}

// Theme returns the theme matching the applied attribute
func (a Appearance) Theme() Theme {
	if a.Dark {
		return ThemeDark
	}
	return ThemeLight
}
