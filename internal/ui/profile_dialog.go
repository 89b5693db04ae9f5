package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pdsagames/games-portal/internal/config"
	"github.com/pdsagames/games-portal/internal/model"
)

// ProfileDialog lets the user edit the persisted profile record.
type ProfileDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	nameEntry   *widget.Entry
	levelSelect *widget.Select

	// onSaved is invoked after the profile is persisted
	onSaved func()
}

// NewProfileDialog creates a new profile dialog
func NewProfileDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *ProfileDialog {
	pd := &ProfileDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	pd.createUI()
	return pd
}

// Show displays the profile dialog
func (pd *ProfileDialog) Show() {
	pd.loadCurrentProfile()
	pd.dialog.Show()
}

// createUI creates the profile dialog UI
func (pd *ProfileDialog) createUI() {
	pd.nameEntry = widget.NewEntry()
	pd.nameEntry.SetPlaceHolder(model.DefaultProfileName)

	levelOptions := []string{}
	for _, level := range model.Levels() {
		levelOptions = append(levelOptions, level.String())
	}
	pd.levelSelect = widget.NewSelect(levelOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(pd.localization.GetText(KeyProfileName)),
		pd.nameEntry,

		widget.NewLabel(pd.localization.GetText(KeyLevel)),
		pd.levelSelect,
	)

	pd.dialog = dialog.NewCustomConfirm(
		pd.localization.GetText(KeyEditProfile),
		pd.localization.GetText(KeySave),
		pd.localization.GetText(KeyCancel),
		form,
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(ProfileDialogWidth, ProfileDialogHeight))
}

// loadCurrentProfile loads the persisted profile into the UI
func (pd *ProfileDialog) loadCurrentProfile() {
	profile := pd.settings.Profile()
	pd.nameEntry.SetText(profile.Name)
	pd.levelSelect.SetSelected(profile.Level.String())
}

// onSave handles saving the profile edits. Only name and level are user
// editable; play counter and progress belong to the launch reward.
func (pd *ProfileDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	profile := pd.settings.Profile()

	if pd.nameEntry.Text != "" {
		profile.Name = pd.nameEntry.Text
	}
	if pd.levelSelect.Selected != "" {
		profile.Level = model.ParseLevel(pd.levelSelect.Selected)
	}

	pd.settings.SetProfile(profile)

	if pd.onSaved != nil {
		pd.onSaved()
	}
}
