package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/pdsagames/games-portal/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestProfile_DefaultsWhenNeverSet(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	p := settings.Profile()

	if p.Name != model.DefaultProfileName {
		t.Errorf("Expected default name %q, got %q", model.DefaultProfileName, p.Name)
	}
	if p.Level != model.LevelBeginner {
		t.Errorf("Expected default level Beginner, got %s", p.Level)
	}
	if p.GamesPlayed != 0 {
		t.Errorf("Expected 0 games played, got %d", p.GamesPlayed)
	}
	if p.LevelProgress != 0 {
		t.Errorf("Expected 0 progress, got %d", p.LevelProgress)
	}
}

func TestProfile_RoundTrip(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	stored := model.Profile{
		Name:          "Ada",
		Level:         model.LevelAdvanced,
		GamesPlayed:   42,
		LevelProgress: 73,
	}
	settings.SetProfile(stored)

	got := settings.Profile()
	if got != stored {
		t.Errorf("Profile round-trip mismatch: stored %+v, got %+v", stored, got)
	}
}

func TestProfile_ClampsCorruptedValues(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Simulate out-of-range values written by an older build or by hand.
	prefs := app.Preferences()
	prefs.SetString(KeyProfileLevel, "Wizard")
	prefs.SetInt(KeyGamesPlayed, -5)
	prefs.SetInt(KeyLevelProgress, 250)

	p := settings.Profile()

	if p.Level != model.LevelBeginner {
		t.Errorf("Expected unknown level to clamp to Beginner, got %s", p.Level)
	}
	if p.GamesPlayed != 0 {
		t.Errorf("Expected games played clamped to 0, got %d", p.GamesPlayed)
	}
	if p.LevelProgress != model.MaxLevelProgress {
		t.Errorf("Expected progress clamped to %d, got %d", model.MaxLevelProgress, p.LevelProgress)
	}
}

func TestSetProfileName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetProfileName("Grace")
	if got := settings.Profile().Name; got != "Grace" {
		t.Errorf("Expected name Grace, got %q", got)
	}

	// Empty names fall back to the default.
	settings.SetProfileName("")
	if got := settings.Profile().Name; got != model.DefaultProfileName {
		t.Errorf("Expected default name, got %q", got)
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if theme := settings.Theme(); theme != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, theme)
	}

	settings.SetTheme(ThemeLight)
	if theme := settings.Theme(); theme != ThemeLight {
		t.Errorf("Expected theme light, got %s", theme)
	}

	// Unknown stored values fall back to the default.
	app.Preferences().SetString(KeyTheme, "solarized")
	if theme := settings.Theme(); theme != DefaultTheme {
		t.Errorf("Expected unknown theme to fall back to %s, got %s", DefaultTheme, theme)
	}
}

func TestCustomThemeColor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if color := settings.CustomThemeColor(); color != DefaultCustomThemeColor {
		t.Errorf("Expected default color %s, got %s", DefaultCustomThemeColor, color)
	}

	settings.SetCustomThemeColor("#00C853")
	if color := settings.CustomThemeColor(); color != "#00C853" {
		t.Errorf("Expected #00C853, got %s", color)
	}
}

func TestThemeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.ThemeOptions()
	expected := []ThemeName{ThemeDark, ThemeLight, ThemeCustom}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d theme options, got %d", len(expected), len(options))
	}
	for i, want := range expected {
		if options[i] != want {
			t.Errorf("Theme option %d: expected %s, got %s", i, want, options[i])
		}
	}
}
