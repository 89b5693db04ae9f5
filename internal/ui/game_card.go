package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/pdsagames/games-portal/internal/model"
)

// GameCard represents one game on the dashboard grid.
type GameCard struct {
	widget.BaseWidget

	game         model.Game
	localization *Localization

	// UI components
	iconText      *canvas.Text
	titleLabel    *widget.Label
	descLabel     *widget.Label
	categoryLabel *widget.Label
	launchBtn     *widget.Button

	// Callbacks
	onLaunch func(gameID string)
}

// NewGameCard creates a new game card widget
func NewGameCard(game model.Game, localization *Localization) *GameCard {
	gc := &GameCard{
		game:         game,
		localization: localization,
	}
	gc.ExtendBaseWidget(gc)
	gc.createUI()
	return gc
}

// SetCallbacks sets the action callbacks
func (gc *GameCard) SetCallbacks(onLaunch func(gameID string)) {
	if onLaunch == nil {
		log.Printf("Warning: onLaunch callback is nil for game %s", gc.game.ID)
	}
	gc.onLaunch = onLaunch
}

// Game returns the descriptor rendered by this card.
func (gc *GameCard) Game() model.Game {
	return gc.game
}

// createUI creates the UI components
func (gc *GameCard) createUI() {
	gc.iconText = canvas.NewText(gc.game.Icon, ParseHexColor(gc.game.Color))
	gc.iconText.TextSize = IconLabelSize
	gc.iconText.Alignment = fyne.TextAlignCenter

	gc.titleLabel = widget.NewLabel(gc.game.Title)
	gc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	gc.titleLabel.Alignment = fyne.TextAlignCenter
	gc.titleLabel.Wrapping = fyne.TextWrapWord

	gc.descLabel = widget.NewLabel(gc.game.Description)
	gc.descLabel.Alignment = fyne.TextAlignCenter
	gc.descLabel.Wrapping = fyne.TextWrapWord

	gc.categoryLabel = widget.NewLabel(gc.game.Category)
	gc.categoryLabel.Alignment = fyne.TextAlignCenter
	gc.categoryLabel.TextStyle = fyne.TextStyle{Italic: true}

	gc.launchBtn = widget.NewButton(gc.localization.GetText(KeyStartGame), func() {
		log.Printf("Launch button clicked for game %s", gc.game.ID)
		if gc.onLaunch != nil {
			gc.onLaunch(gc.game.ID)
		} else {
			log.Printf("onLaunch callback is nil for game %s", gc.game.ID)
		}
	})
	gc.launchBtn.Importance = widget.HighImportance
}

// RefreshTexts updates localized texts after a language change.
func (gc *GameCard) RefreshTexts() {
	gc.launchBtn.SetText(gc.localization.GetText(KeyStartGame))
	gc.Refresh()
}

// CreateRenderer creates the widget renderer
func (gc *GameCard) CreateRenderer() fyne.WidgetRenderer {
	return &gameCardRenderer{card: gc}
}

// gameCardRenderer renders the game card widget
type gameCardRenderer struct {
	card   *GameCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *gameCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	if size.Height < CardMinHeight {
		size.Height = CardMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *gameCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CardMinWidth, CardMinHeight)
}

// Refresh refreshes the renderer
func (r *gameCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *gameCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *gameCardRenderer) Destroy() {}

// createLayout creates the card layout: icon on top, title and description
// in the middle, the launch button pinned to the bottom.
func (r *gameCardRenderer) createLayout() {
	gc := r.card

	body := container.NewVBox(
		gc.iconText,
		gc.titleLabel,
		gc.categoryLabel,
		gc.descLabel,
	)

	r.layout = container.NewBorder(nil, gc.launchBtn, nil, nil, body)
}
