package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pdsagames/games-portal/internal/config"
	"github.com/pdsagames/games-portal/internal/model"
	"github.com/pdsagames/games-portal/internal/portal"
)

// RootUI represents the main dashboard structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	controller   *portal.Controller
	settings     *config.Settings
	localization *Localization

	// Components
	sidebar       *Sidebar
	profileDialog *ProfileDialog
	cards         []*GameCard
	cardGrid      *fyne.Container
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	footerLabel   *widget.Label

	currentFilter CardFilter
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *portal.Controller, settings *config.Settings) *RootUI {
	localization := NewLocalization()

	ui := &RootUI{
		window:        window,
		app:           app,
		controller:    controller,
		settings:      settings,
		localization:  localization,
		currentFilter: NewCardFilter(),
	}

	log.Printf("RootUI initialized with controller: %v", ui.controller != nil)

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Refresh the sidebar whenever a launch reward or edit lands.
	ui.controller.SetProfileUpdateCallback(ui.onProfileUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header
	portalIcon := widget.NewLabel(IconPortal)
	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.subtitleLabel = widget.NewLabel(ui.localization.GetText(KeyAppSubtitle))
	header := container.NewHBox(portalIcon, container.NewVBox(ui.titleLabel, ui.subtitleLabel))

	// Game cards
	for _, game := range model.Games() {
		card := NewGameCard(game, ui.localization)
		card.SetCallbacks(ui.onLaunchRequested)
		ui.cards = append(ui.cards, card)
	}

	ui.cardGrid = container.NewGridWrap(fyne.NewSize(CardMinWidth, CardMinHeight))
	ui.applyFilter()

	// Sidebar
	ui.sidebar = NewSidebar(ui.localization, ui.settings)
	ui.sidebar.SetCallbacks(
		ui.onFilterChanged,
		ui.onEditProfile,
		ui.onThemeChanged,
	)

	// Profile dialog
	ui.profileDialog = NewProfileDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onProfileUpdate(ui.settings.Profile())
	})

	// Footer
	ui.footerLabel = widget.NewLabel(ui.localization.GetText(KeyFooter))
	ui.footerLabel.Alignment = fyne.TextAlignCenter

	content := container.NewBorder(
		header,                           // top
		ui.footerLabel,                   // bottom
		ui.sidebar.Container(),           // left
		nil,                              // right
		container.NewScroll(ui.cardGrid), // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	profileItem := fyne.NewMenuItem(ui.localization.GetText(KeyEditProfile), ui.onEditProfile)

	// Language submenu
	languageMenu := fyne.NewMenu("Language")
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyProfile), profileItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(ui.localization.GetText(KeyAppSubtitle))
	ui.footerLabel.SetText(ui.localization.GetText(KeyFooter))

	for _, card := range ui.cards {
		card.RefreshTexts()
	}
}

// onLaunchRequested handles a card's launch button. The spawn either
// succeeds (reward applied, popup shown) or fails with a modal error; the
// dashboard keeps running either way and the card stays clickable.
func (ui *RootUI) onLaunchRequested(gameID string) {
	log.Printf("onLaunchRequested called for game %s", gameID)

	record, err := ui.controller.HandleLaunchRequest(gameID)
	if err != nil {
		log.Printf("Launch failed for game %s: %v", gameID, err)
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("Launch succeeded: game=%s pid=%d", record.GameID, record.PID)
	ui.sidebar.UpdateHistory(ui.controller.History())
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyGameStarted)), ui.window.Canvas())
}

// onProfileUpdate handles profile changes from the controller
func (ui *RootUI) onProfileUpdate(profile model.Profile) {
	log.Printf("Profile update received: name=%s level=%s played=%d progress=%d",
		profile.Name, profile.Level, profile.GamesPlayed, profile.LevelProgress)

	ui.sidebar.UpdateProfile(profile)
}

// onFilterChanged handles filter changes from the sidebar
func (ui *RootUI) onFilterChanged(filter CardFilter) {
	ui.currentFilter = filter
	ui.applyFilter()
}

// applyFilter rebuilds the card grid with the cards passing the filter.
func (ui *RootUI) applyFilter() {
	ui.cardGrid.RemoveAll()
	for _, card := range ui.cards {
		if ui.currentFilter.Matches(card.Game()) {
			ui.cardGrid.Add(card)
		}
	}
	ui.cardGrid.Refresh()
}

// onEditProfile shows the profile dialog
func (ui *RootUI) onEditProfile() {
	ui.profileDialog.Show()
}

// onThemeChanged applies and persists a theme selection
func (ui *RootUI) onThemeChanged(name config.ThemeName, accentHex string) {
	ui.settings.SetTheme(name)
	if name == config.ThemeCustom {
		ui.settings.SetCustomThemeColor(accentHex)
	}

	ui.app.Settings().SetTheme(ThemeForSettings(ui.settings))
}

// ThemeForSettings maps the persisted theme preference to a fyne.Theme.
func ThemeForSettings(settings *config.Settings) fyne.Theme {
	switch settings.Theme() {
	case config.ThemeLight:
		return NewLightTheme()
	case config.ThemeCustom:
		return NewCustomTheme(settings.CustomThemeColor())
	default:
		return NewDarkTheme()
	}
}
