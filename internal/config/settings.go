package config

import (
	"fyne.io/fyne/v2"

	"github.com/pdsagames/games-portal/internal/model"
)

// Theme names selectable in the sidebar.
type ThemeName string

const (
	ThemeDark   ThemeName = "dark"
	ThemeLight  ThemeName = "light"
	ThemeCustom ThemeName = "custom"
)

// Settings keys for Fyne preferences
const (
	KeyProfileName      = "profile/name"
	KeyProfileLevel     = "profile/level"
	KeyGamesPlayed      = "profile/games_played"
	KeyLevelProgress    = "profile/level_progress"
	KeyTheme            = "theme"
	KeyCustomThemeColor = "custom_theme_color"
)

// Default values
const (
	DefaultTheme            = ThemeDark
	DefaultCustomThemeColor = "#3D5AFE"
)

// Settings manages the persisted portal state: the user profile and theme
// preferences. It is the single durable key-value store of the app, backed
// by Fyne preferences under the portal application ID.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Profile reads the persisted profile, filling in defaults for keys that
// were never set and clamping out-of-range stored values.
func (s *Settings) Profile() model.Profile {
	prefs := s.app.Preferences()

	p := model.Profile{
		Name:          prefs.StringWithFallback(KeyProfileName, model.DefaultProfileName),
		Level:         model.ParseLevel(prefs.StringWithFallback(KeyProfileLevel, model.LevelBeginner.String())),
		GamesPlayed:   prefs.IntWithFallback(KeyGamesPlayed, 0),
		LevelProgress: prefs.IntWithFallback(KeyLevelProgress, 0),
	}
	p.Clamp()
	return p
}

// SetProfile persists the full profile record.
func (s *Settings) SetProfile(p model.Profile) {
	p.Clamp()

	prefs := s.app.Preferences()
	prefs.SetString(KeyProfileName, p.Name)
	prefs.SetString(KeyProfileLevel, p.Level.String())
	prefs.SetInt(KeyGamesPlayed, p.GamesPlayed)
	prefs.SetInt(KeyLevelProgress, p.LevelProgress)
}

// SetProfileName updates only the display name.
func (s *Settings) SetProfileName(name string) {
	if name == "" {
		name = model.DefaultProfileName
	}
	s.app.Preferences().SetString(KeyProfileName, name)
}

// Theme returns the configured theme name.
func (s *Settings) Theme() ThemeName {
	name := s.app.Preferences().String(KeyTheme)
	switch ThemeName(name) {
	case ThemeDark, ThemeLight, ThemeCustom:
		return ThemeName(name)
	default:
		return DefaultTheme
	}
}

// SetTheme sets the theme name.
func (s *Settings) SetTheme(name ThemeName) {
	s.app.Preferences().SetString(KeyTheme, string(name))
}

// CustomThemeColor returns the accent color for the custom theme as
// #RRGGBB.
func (s *Settings) CustomThemeColor() string {
	color := s.app.Preferences().String(KeyCustomThemeColor)
	if color == "" {
		s.SetCustomThemeColor(DefaultCustomThemeColor)
		return DefaultCustomThemeColor
	}
	return color
}

// SetCustomThemeColor sets the accent color for the custom theme.
func (s *Settings) SetCustomThemeColor(color string) {
	if color == "" {
		color = DefaultCustomThemeColor
	}
	s.app.Preferences().SetString(KeyCustomThemeColor, color)
}

// ThemeOptions returns the selectable theme names in display order.
func (s *Settings) ThemeOptions() []ThemeName {
	return []ThemeName{ThemeDark, ThemeLight, ThemeCustom}
}
