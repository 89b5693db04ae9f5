package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pdsagames/games-portal/internal/config"
	"github.com/pdsagames/games-portal/internal/launch"
	"github.com/pdsagames/games-portal/internal/platform"
	"github.com/pdsagames/games-portal/internal/portal"
	"github.com/pdsagames/games-portal/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.pdsagamesportal.dashboard")
	myWindow := myApp.NewWindow("PDSA Games Portal")
	myWindow.Resize(fyne.NewSize(1000, 700))

	rootDir, err := platform.AppRootDir()
	if err != nil {
		log.Printf("failed to resolve app root, using cwd: %v", err)
		rootDir = "."
	}

	settings := config.NewSettings(myApp)
	controller := portal.NewController(launch.NewService(rootDir), settings)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, settings)

	// Show and run
	myWindow.ShowAndRun()
}
