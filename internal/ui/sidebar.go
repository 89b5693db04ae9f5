package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/pdsagames/games-portal/internal/config"
	"github.com/pdsagames/games-portal/internal/model"
	"github.com/pdsagames/games-portal/internal/stats"
)

// Sidebar renders the profile, filters, placeholder statistics, recent
// activity, and the theme switcher.
type Sidebar struct {
	localization *Localization
	settings     *config.Settings
	statsGen     *stats.Generator

	// Profile section
	nameLabel   *widget.Label
	levelLabel  *widget.Label
	playedLabel *widget.Label
	progressBar *widget.ProgressBar
	editBtn     *widget.Button

	// Filter section
	categorySelect *widget.Select
	searchEntry    *widget.Entry

	// Statistics section (placeholder values, recomputed per refresh)
	statBars     []*widget.ProgressBar
	statGames    []model.Game
	sessionLabel *widget.Label
	streakLabel  *widget.Label
	refreshBtn   *widget.Button

	// Recent activity
	historyBox *fyne.Container

	// Theme section
	themeSelect *widget.Select
	accentEntry *widget.Entry

	container *fyne.Container

	// Callbacks
	onFilterChanged func(CardFilter)
	onEditProfile   func()
	onThemeChanged  func(config.ThemeName, string)
}

// NewSidebar creates the sidebar with all sections collapsed into a single
// scrollable column.
func NewSidebar(localization *Localization, settings *config.Settings) *Sidebar {
	sb := &Sidebar{
		localization: localization,
		settings:     settings,
		statsGen:     stats.NewGenerator(),
	}
	sb.createUI()
	return sb
}

// SetCallbacks sets the sidebar action callbacks
func (sb *Sidebar) SetCallbacks(
	onFilterChanged func(CardFilter),
	onEditProfile func(),
	onThemeChanged func(config.ThemeName, string),
) {
	sb.onFilterChanged = onFilterChanged
	sb.onEditProfile = onEditProfile
	sb.onThemeChanged = onThemeChanged
}

// Container returns the sidebar root object.
func (sb *Sidebar) Container() fyne.CanvasObject {
	scroll := container.NewScroll(sb.container)
	scroll.SetMinSize(fyne.NewSize(SidebarWidth, 0))
	return scroll
}

// Filter returns the filter currently selected in the sidebar.
func (sb *Sidebar) Filter() CardFilter {
	filter := NewCardFilter()
	if sb.categorySelect.Selected != "" {
		filter.Category = sb.categorySelect.Selected
	}
	filter.Query = sb.searchEntry.Text
	return filter
}

// UpdateProfile refreshes the profile section from a persisted record.
func (sb *Sidebar) UpdateProfile(p model.Profile) {
	sb.nameLabel.SetText(IconProfile + " " + p.Name)
	sb.levelLabel.SetText(fmt.Sprintf("%s: %s", sb.localization.GetText(KeyLevel), p.Level))
	sb.playedLabel.SetText(fmt.Sprintf("%s: %d", sb.localization.GetText(KeyGamesPlayed), p.GamesPlayed))
	sb.progressBar.SetValue(float64(p.LevelProgress) / float64(model.MaxLevelProgress))
}

// UpdateHistory refreshes the recent-activity section, most recent first.
func (sb *Sidebar) UpdateHistory(records []*model.LaunchRecord) {
	sb.historyBox.RemoveAll()

	if len(records) == 0 {
		sb.historyBox.Add(widget.NewLabel(sb.localization.GetText(KeyNoActivity)))
		sb.historyBox.Refresh()
		return
	}

	shown := records
	if len(shown) > HistoryEntries {
		shown = shown[:HistoryEntries]
	}
	for _, rec := range shown {
		line := widget.NewLabel(rec.StartedAt.Format("15:04") + MiddleDotSeparator + rec.GameTitle)
		line.Truncation = fyne.TextTruncateEllipsis
		sb.historyBox.Add(line)
	}
	sb.historyBox.Refresh()
}

// RefreshStats recomputes the placeholder statistics. Values are random on
// every call; they never reflect what the launched games actually did.
func (sb *Sidebar) RefreshStats() {
	snap := sb.statsGen.Snapshot()

	for i, share := range snap.Shares {
		if i < len(sb.statBars) {
			sb.statBars[i].SetValue(float64(share.Share) / float64(stats.MaxPlayShare))
		}
	}
	sb.sessionLabel.SetText(fmt.Sprintf("%s: %d", sb.localization.GetText(KeySessionMinutes), snap.SessionMinutes))
	sb.streakLabel.SetText(fmt.Sprintf("%s: %d", sb.localization.GetText(KeyStreakDays), snap.StreakDays))
}

// createUI creates all sidebar sections
func (sb *Sidebar) createUI() {
	// Profile
	sb.nameLabel = widget.NewLabel("")
	sb.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	sb.levelLabel = widget.NewLabel("")
	sb.playedLabel = widget.NewLabel("")
	sb.progressBar = widget.NewProgressBar()
	sb.editBtn = widget.NewButton(sb.localization.GetText(KeyEditProfile), func() {
		if sb.onEditProfile != nil {
			sb.onEditProfile()
		}
	})
	sb.editBtn.Importance = widget.LowImportance

	// Filters
	sb.categorySelect = widget.NewSelect(model.Categories(), func(string) {
		sb.notifyFilter()
	})
	sb.categorySelect.SetSelected(model.CategoryAll)

	sb.searchEntry = widget.NewEntry()
	sb.searchEntry.SetPlaceHolder(sb.localization.GetText(KeySearch))
	sb.searchEntry.OnChanged = func(string) {
		sb.notifyFilter()
	}

	// Statistics: one bar per catalog game plus summary labels
	sb.statGames = model.Games()
	statRows := make([]fyne.CanvasObject, 0, len(sb.statGames)*2)
	for _, game := range sb.statGames {
		bar := widget.NewProgressBar()
		sb.statBars = append(sb.statBars, bar)
		label := widget.NewLabel(game.Icon + " " + game.Title)
		label.Truncation = fyne.TextTruncateEllipsis
		statRows = append(statRows, label, bar)
	}
	sb.sessionLabel = widget.NewLabel("")
	sb.streakLabel = widget.NewLabel("")
	sb.refreshBtn = widget.NewButton(IconRefresh+" "+sb.localization.GetText(KeyRefreshStats), func() {
		sb.RefreshStats()
	})
	sb.refreshBtn.Importance = widget.LowImportance

	// Recent activity
	sb.historyBox = container.NewVBox()

	// Theme switcher
	themeOptions := []string{}
	for _, name := range sb.settings.ThemeOptions() {
		themeOptions = append(themeOptions, string(name))
	}
	sb.themeSelect = widget.NewSelect(themeOptions, func(selected string) {
		sb.notifyTheme()
	})
	sb.themeSelect.SetSelected(string(sb.settings.Theme()))

	sb.accentEntry = widget.NewEntry()
	sb.accentEntry.SetPlaceHolder("#RRGGBB")
	sb.accentEntry.SetText(sb.settings.CustomThemeColor())
	sb.accentEntry.OnSubmitted = func(string) {
		sb.notifyTheme()
	}

	sb.container = container.NewVBox(
		sb.sectionLabel(KeyProfile, IconProfile),
		sb.nameLabel,
		sb.levelLabel,
		sb.progressBar,
		sb.playedLabel,
		sb.editBtn,
		widget.NewSeparator(),

		sb.sectionLabel(KeyFilters, IconSearch),
		widget.NewLabel(sb.localization.GetText(KeyCategory)),
		sb.categorySelect,
		sb.searchEntry,
		widget.NewSeparator(),

		sb.sectionLabel(KeyStatistics, IconStats),
	)
	for _, row := range statRows {
		sb.container.Add(row)
	}
	sb.container.Add(sb.sessionLabel)
	sb.container.Add(sb.streakLabel)
	sb.container.Add(sb.refreshBtn)
	sb.container.Add(widget.NewSeparator())

	sb.container.Add(sb.sectionLabel(KeyRecentActivity, IconHistory))
	sb.container.Add(sb.historyBox)
	sb.container.Add(widget.NewSeparator())

	sb.container.Add(sb.sectionLabel(KeyTheme, IconTheme))
	sb.container.Add(sb.themeSelect)
	sb.container.Add(widget.NewLabel(sb.localization.GetText(KeyAccentColor)))
	sb.container.Add(sb.accentEntry)

	sb.UpdateProfile(sb.settings.Profile())
	sb.UpdateHistory(nil)
	sb.RefreshStats()
}

// sectionLabel builds a bold section header.
func (sb *Sidebar) sectionLabel(key, icon string) *widget.Label {
	label := widget.NewLabel(icon + " " + sb.localization.GetText(key))
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

func (sb *Sidebar) notifyFilter() {
	if sb.onFilterChanged != nil {
		sb.onFilterChanged(sb.Filter())
	}
}

func (sb *Sidebar) notifyTheme() {
	if sb.onThemeChanged == nil {
		return
	}

	name := config.ThemeName(sb.themeSelect.Selected)
	accent := sb.accentEntry.Text

	log.Printf("ui: INFO theme changed to %s (accent %s)", name, accent)
	sb.onThemeChanged(name, accent)
}
