package portal

import (
	"fmt"
	"log"

	"github.com/pdsagames/games-portal/internal/config"
	"github.com/pdsagames/games-portal/internal/launch"
	"github.com/pdsagames/games-portal/internal/model"
)

// MaxHistory bounds the in-memory launch history shown in the sidebar.
const MaxHistory = 20

// Controller coordinates launch requests between the UI and the services.
// All calls happen on the UI goroutine; there is no concurrent mutation.
type Controller struct {
	launcher launch.Launcher
	settings *config.Settings

	history []*model.LaunchRecord

	// onProfileUpdate is invoked after each persisted profile change so the
	// sidebar can refresh.
	onProfileUpdate func(model.Profile)
}

// NewController creates a controller owning the given launcher and settings.
func NewController(launcher launch.Launcher, settings *config.Settings) *Controller {
	return &Controller{
		launcher: launcher,
		settings: settings,
	}
}

// SetProfileUpdateCallback sets the callback invoked after profile changes.
func (c *Controller) SetProfileUpdateCallback(callback func(model.Profile)) {
	c.onProfileUpdate = callback
}

// Profile returns the current persisted profile.
func (c *Controller) Profile() model.Profile {
	return c.settings.Profile()
}

// RenameProfile persists a new display name and notifies the UI.
func (c *Controller) RenameProfile(name string) {
	c.settings.SetProfileName(name)
	c.notifyProfile()
}

// History returns the launches of this session, most recent first.
func (c *Controller) History() []*model.LaunchRecord {
	return c.history
}

// HandleLaunchRequest resolves the game by ID, spawns it, and on apparent
// success applies the launch reward and persists the profile. "Success"
// means the spawn call did not fail; the portal has no liveness check of
// the child and deliberately keeps that weak contract.
func (c *Controller) HandleLaunchRequest(gameID string) (*model.LaunchRecord, error) {
	game, ok := model.GameByID(gameID)
	if !ok {
		return nil, fmt.Errorf("unknown game: %s", gameID)
	}

	record, err := c.launcher.Launch(game)
	if err != nil {
		return nil, err
	}

	profile := c.settings.Profile()
	profile.ApplyLaunchReward()
	c.settings.SetProfile(profile)
	log.Printf("portal: INFO profile updated after launch: played=%d level=%s progress=%d",
		profile.GamesPlayed, profile.Level, profile.LevelProgress)

	c.history = append([]*model.LaunchRecord{record}, c.history...)
	if len(c.history) > MaxHistory {
		c.history = c.history[:MaxHistory]
	}

	c.notifyProfile()
	return record, nil
}

func (c *Controller) notifyProfile() {
	if c.onProfileUpdate != nil {
		c.onProfileUpdate(c.settings.Profile())
	}
}
