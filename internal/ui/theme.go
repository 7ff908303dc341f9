// Package ui provides the anchorage planner's desktop UI.
//
// This file defines a compact Fyne theme that leaves room for the plan.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AnchorageTheme wraps the default Fyne theme with compact sizing and an
// optional forced light/dark variant.
type AnchorageTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	forced  bool
}

// NewAnchorageTheme follows the system light/dark preference.
func NewAnchorageTheme() *AnchorageTheme {
	return &AnchorageTheme{base: theme.DefaultTheme()}
}

// ThemeForName maps the config value "light", "dark" or "system" to a theme.
// Unknown names follow the system.
func ThemeForName(name string) *AnchorageTheme {
	t := NewAnchorageTheme()
	switch name {
	case "light":
		t.SetVariant(theme.VariantLight)
	case "dark":
		t.SetVariant(theme.VariantDark)
	}
	return t
}

// SetVariant forces a light or dark variant regardless of the system setting.
func (t *AnchorageTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.forced = true
}

func (t *AnchorageTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

func (t *AnchorageTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *AnchorageTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *AnchorageTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
