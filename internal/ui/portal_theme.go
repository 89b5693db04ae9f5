package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Fallback accent used when a stored color string cannot be parsed.
var defaultAccent = color.RGBA{R: 61, G: 90, B: 254, A: 255} // #3D5AFE

// PortalTheme forces a light or dark variant and applies the portal accent
// color. The accent comes from the persisted custom_theme_color preference
// when the custom theme is selected.
type PortalTheme struct {
	variant fyne.ThemeVariant
	accent  color.Color
}

// NewDarkTheme creates the default dark portal theme.
func NewDarkTheme() fyne.Theme {
	return &PortalTheme{variant: theme.VariantDark, accent: defaultAccent}
}

// NewLightTheme creates the light portal theme.
func NewLightTheme() fyne.Theme {
	return &PortalTheme{variant: theme.VariantLight, accent: defaultAccent}
}

// NewCustomTheme creates a dark theme with a user-chosen accent color given
// as #RRGGBB.
func NewCustomTheme(accentHex string) fyne.Theme {
	return &PortalTheme{variant: theme.VariantDark, accent: ParseHexColor(accentHex)}
}

// Color returns theme colors
func (t *PortalTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.accent
	case theme.ColorNameSuccess:
		return color.RGBA{R: 0, G: 200, B: 83, A: 255} // Green, matches the TSP card
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for launch errors
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use the forced variant for everything else
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *PortalTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PortalTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *PortalTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// ParseHexColor parses #RRGGBB into a color, falling back to the default
// accent for malformed input.
func ParseHexColor(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return defaultAccent
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return defaultAccent
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
