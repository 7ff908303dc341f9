package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/anchorage/internal/engine"
	"github.com/piwi3910/anchorage/internal/model"
	"github.com/piwi3910/anchorage/internal/scenario"
	"github.com/piwi3910/anchorage/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	config  model.AppConfig
	logger  *log.Logger
	client  *scenario.Client
	scene   *engine.Scene
	current *model.Scenario
	history *History

	// UI references for dynamic updates
	canvas       *widgets.AnchorageCanvas
	trackingList *fyne.Container
	statusLabel  *widget.Label
	undoBtn      *ttwidget.Button
	redoBtn      *ttwidget.Button
}

func NewApp(application fyne.App, window fyne.Window, config model.AppConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		app:     application,
		window:  window,
		config:  config,
		logger:  logger,
		client:  scenario.NewClient(config.APIBaseURL, logger),
		scene:   engine.NewScene(config.Layout, logger),
		history: NewHistory(),
	}
	a.applyTheme()
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recentMenu := fyne.NewMenuItem("Open Recent", nil)
	recentMenu.ChildMenu = a.buildRecentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Random Scenario", a.FetchRandom),
		fyne.NewMenuItem("Open Scenario...", a.openScenario),
		recentMenu,
		fyne.NewMenuItem("Save Scenario...", a.saveScenario),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Fleets from CSV...", a.importCSV),
		fyne.NewMenuItem("Import Fleets from Excel...", a.importExcel),
		fyne.NewMenuItem("Import Fleets from DXF...", a.importDXF),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Plan as PDF...", a.exportPDF),
		fyne.NewMenuItem("Export Vessel Labels...", a.exportLabels),
		fyne.NewMenuItem("Export Plan as DXF...", a.exportDXF),
		fyne.NewMenuItem("Export Tracking Report...", a.exportReport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Layout", a.resetLayout),
	)

	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Preferences...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Settings...", a.showImportExportDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, settingsMenu, helpMenu))
}

func (a *App) buildRecentMenu() *fyne.Menu {
	if len(a.config.RecentScenario) == 0 {
		empty := fyne.NewMenuItem("(none)", nil)
		empty.Disabled = true
		return fyne.NewMenu("", empty)
	}
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentScenario))
	for _, path := range a.config.RecentScenario {
		items = append(items, fyne.NewMenuItem(path, func() {
			a.openScenarioPath(path)
		}))
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Anchorage",
		"Anchorage — vessel placement planner\n\n"+
			"Drag every vessel into the anchorage without overlaps.\n"+
			"Right-click a vessel to rotate it a quarter turn.\n"+
			"Press Escape while dragging to put a vessel back.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.canvas = widgets.NewAnchorageCanvas(a.scene)
	a.canvas.OnCommit = a.commit
	a.canvas.OnChange = a.refreshTracking

	a.trackingList = container.NewVBox()
	a.statusLabel = widget.NewLabel("")

	a.undoBtn = newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo (Ctrl+Z)", a.undo)
	a.redoBtn = newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo (Ctrl+Y)", a.redo)
	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.ViewRefreshIcon(), "New random scenario", a.FetchRandom),
		newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open scenario file", a.openScenario),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save scenario file", a.saveScenario),
		widget.NewSeparator(),
		a.undoBtn,
		a.redoBtn,
		newIconButtonWithTooltip(theme.MediaReplayIcon(), "Reset layout", a.resetLayout),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export plan as PDF", a.exportPDF),
		layout.NewSpacer(),
		newIconButtonWithTooltip(theme.SettingsIcon(), "Preferences", a.showSettingsDialog),
	)

	tracking := container.NewBorder(
		widget.NewLabelWithStyle("Placement", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(a.trackingList),
	)

	a.setupShortcuts()
	a.refreshTracking()
	a.updateHistoryButtons()

	split := container.NewHSplit(container.NewScroll(a.canvas), tracking)
	split.SetOffset(0.8)
	return container.NewBorder(toolbar, a.statusLabel, nil, nil, split)
}

func (a *App) setupShortcuts() {
	c := a.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.canvas.CancelDrag()
		}
	})
}

// ─── Scene ─────────────────────────────────────────────────

// LoadScenario lays out a new scenario, replacing the current one.
func (a *App) LoadScenario(sc *model.Scenario) {
	a.current = sc
	a.scene.Load(sc)
	a.history.Clear()
	if a.canvas != nil {
		a.canvas.Refresh()
	}
	a.refreshTracking()
	a.updateHistoryButtons()
	if sc != nil {
		a.logger.Info("scenario loaded",
			"anchorage", fmt.Sprintf("%.0fx%.0f", sc.Anchorage.Width, sc.Anchorage.Height),
			"vessels", sc.TotalVessels())
	}
}

// rebuildScene recreates the scene after the layout constants change.
func (a *App) rebuildScene() {
	a.scene = engine.NewScene(a.config.Layout, a.logger)
	if a.canvas != nil {
		a.canvas.SetScene(a.scene)
	}
	a.LoadScenario(a.current)
}

func (a *App) commit(label string, before []model.Pose) {
	a.history.Push(MakeSnapshot(before, label))
	a.updateHistoryButtons()
	a.logger.Debug("committed", "action", label)
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.scene.Snapshot(), "current"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.scene.Snapshot(), "current"))
	if !ok {
		return
	}
	a.restore(snap)
}

func (a *App) restore(snap Snapshot) {
	if !a.scene.Restore(snap.Poses) {
		a.logger.Warn("snapshot does not match the scene, clearing history", "label", snap.Label)
		a.history.Clear()
	}
	a.canvas.Refresh()
	a.refreshTracking()
	a.updateHistoryButtons()
}

func (a *App) resetLayout() {
	if a.current == nil {
		return
	}
	before := a.scene.Snapshot()
	a.scene.Load(a.current)
	a.commit("Reset layout", before)
	a.canvas.Refresh()
	a.refreshTracking()
}

func (a *App) updateHistoryButtons() {
	if a.undoBtn == nil {
		return
	}
	setEnabled(a.undoBtn, a.history.CanUndo())
	setEnabled(a.redoBtn, a.history.CanRedo())
}

func setEnabled(btn *ttwidget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

// ─── Tracking Panel ────────────────────────────────────────

func (a *App) refreshTracking() {
	if a.trackingList == nil {
		return
	}
	a.trackingList.RemoveAll()

	if !a.scene.Loaded() {
		a.trackingList.Add(widget.NewLabel("No scenario loaded."))
		a.setStatus("Use File > New Random Scenario or open a scenario file.")
		return
	}

	entries := a.scene.Tracking()
	if len(entries) == 0 {
		a.trackingList.Add(widget.NewLabel("No tracked vessel types."))
	}
	for _, e := range entries {
		icon := widget.NewIcon(theme.RadioButtonIcon())
		if e.Complete() {
			icon.SetResource(theme.ConfirmIcon())
		}
		a.trackingList.Add(container.NewHBox(
			icon,
			widget.NewLabelWithStyle(e.Designation, fyne.TextAlignLeading, fyne.TextStyle{Bold: e.Complete()}),
			layout.NewSpacer(),
			widget.NewLabel(fmt.Sprintf("%d / %d", e.Placed, e.Total)),
		))
	}

	conflicts := len(a.scene.Conflicts())
	switch {
	case conflicts > 0:
		a.setStatus(fmt.Sprintf("%d vessels overlap.", conflicts))
	case a.scene.Complete() && len(entries) > 0:
		a.setStatus("All vessels placed.")
	default:
		placed, total := 0, 0
		for _, e := range entries {
			placed += e.Placed
			total += e.Total
		}
		a.setStatus(fmt.Sprintf("%d of %d vessels placed.", placed, total))
	}
}

func (a *App) setStatus(text string) {
	if a.statusLabel != nil {
		a.statusLabel.SetText(text)
	}
}

// ─── Theme ─────────────────────────────────────────────────

func (a *App) applyTheme() {
	if a.app == nil {
		return
	}
	a.app.Settings().SetTheme(ThemeForName(a.config.Theme))
}
