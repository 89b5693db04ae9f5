package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pdsagames/games-portal/internal/config"
	"github.com/pdsagames/games-portal/internal/launch"
	"github.com/pdsagames/games-portal/internal/platform"
	"github.com/pdsagames/games-portal/internal/portal"
	"github.com/pdsagames/games-portal/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pdsagamesportal.dashboard"
	AppName = "PDSA Games Portal"

	WindowWidth  = 1000
	WindowHeight = 700
)

func main() {
	// Any unhandled panic is logged with its trace before exiting non-zero.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("portal: ERROR unhandled panic: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			os.Exit(1)
		}
	}()

	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Resolve the application root; games and the bundled environment live
	// next to the binary.
	rootDir, err := platform.AppRootDir()
	if err != nil {
		log.Printf("portal: WARN failed to resolve app root, using cwd: %v", err)
		rootDir = "."
	}

	// Append-only portal log next to the binary, mirrored to stderr.
	if logFile, err := platform.SetupLogFile(rootDir); err != nil {
		log.Printf("portal: WARN running without log file: %v", err)
	} else {
		defer logFile.Close()
	}

	log.Printf("portal: INFO starting %s v%s (root %s)", AppName, version, rootDir)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize services
	settings := config.NewSettings(myApp)
	launcher := launch.NewService(rootDir)
	controller := portal.NewController(launcher, settings)

	// Apply the persisted theme before any window is shown
	myApp.Settings().SetTheme(ui.ThemeForSettings(settings))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, settings)

	// Show and run
	myWindow.ShowAndRun()

	log.Printf("portal: INFO application exited")
}
