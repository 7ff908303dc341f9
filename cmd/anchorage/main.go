// Anchorage - vessel placement planner
//
// A cross-platform desktop application for dragging a fleet of vessels
// into an anchorage without overlaps, tracking how many of each type
// have been placed.
//
// Build:
//   go build -o anchorage ./cmd/anchorage
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o anchorage.exe ./cmd/anchorage
//   GOOS=darwin  GOARCH=amd64 go build -o anchorage-darwin ./cmd/anchorage
//
// The scenario endpoint can be overridden with ANCHORAGE_API_URL.

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/anchorage/internal/model"
	"github.com/piwi3910/anchorage/internal/project"
	"github.com/piwi3910/anchorage/internal/ui"
)

func main() {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())

	level, levelErr := log.ParseLevel(config.LogLevel)
	if levelErr != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	if err != nil {
		logger.Warn("could not read config, using defaults", "path", project.DefaultConfigPath(), "err", err)
		config = model.DefaultAppConfig()
		project.ApplyEnv(&config)
	}

	application := app.NewWithID("com.piwi3910.anchorage")
	window := application.NewWindow("Anchorage — Vessel Placement Planner")

	appUI := ui.NewApp(application, window, config, logger)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()

	window.Show()
	appUI.FetchRandom()
	application.Run()
}
