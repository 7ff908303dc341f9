package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/piwi3910/anchorage/internal/export"
	fleetimporter "github.com/piwi3910/anchorage/internal/importer"
	"github.com/piwi3910/anchorage/internal/model"
	"github.com/piwi3910/anchorage/internal/project"
	"github.com/piwi3910/anchorage/internal/scenario"
)

const fetchTimeout = 60 * time.Second

// ─── Scenario Sources ──────────────────────────────────────

// FetchRandom requests a scenario off the UI goroutine and loads it when
// it arrives. A failed fetch leaves the current scene untouched.
func (a *App) FetchRandom() {
	a.setStatus("Fetching scenario from " + a.client.BaseURL + " ...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		sc, ok := a.client.TryRandom(ctx)
		fyne.Do(func() {
			if !ok {
				a.refreshTracking()
				dialog.ShowInformation("Scenario unavailable",
					"Could not fetch a scenario from the server.\nCheck the API URL in Preferences or open a scenario file.",
					a.window)
				return
			}
			a.LoadScenario(sc)
		})
	}()
}

func (a *App) openScenario() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openScenarioPath(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func (a *App) openScenarioPath(path string) {
	sc, err := scenario.LoadFile(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.LoadScenario(sc)
	project.AddRecentScenario(&a.config, path)
	a.persistConfig()
	a.SetupMenus()
}

func (a *App) saveScenario() {
	if a.current == nil {
		dialog.ShowInformation("Nothing to save", "Load or import a scenario first.", a.window)
		return
	}
	a.showSaveDialog("scenario.json", func(path string) error {
		if err := scenario.SaveFile(path, a.current); err != nil {
			return err
		}
		project.AddRecentScenario(&a.config, path)
		a.SetupMenus()
		return nil
	})
}

// ─── Import Functions ──────────────────────────────────────

func (a *App) importCSV() {
	a.importWith(".csv", fleetimporter.ImportCSV)
}

func (a *App) importExcel() {
	a.importWith(".xlsx", fleetimporter.ImportExcel)
}

func (a *App) importDXF() {
	a.importWith(".dxf", fleetimporter.ImportDXF)
}

func (a *App) importWith(ext string, importFn func(string) fleetimporter.ImportResult) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(importFn(reader.URI().Path()))
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// handleImportResult turns imported fleets into a scenario. The anchorage
// comes from the import when it carries one, otherwise from the current
// scenario.
func (a *App) handleImportResult(result fleetimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(errors.New(errorMsg), a.window)
	}
	for _, w := range result.Warnings {
		a.logger.Warn("import", "warning", w)
	}
	if len(result.Fleets) == 0 {
		return
	}

	sc, err := scenarioFromImport(result, a.current)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.LoadScenario(sc)

	msg := fmt.Sprintf("Imported %d fleets with %d vessels.", len(sc.Fleets), sc.TotalVessels())
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// errNoAnchorage is returned when fleets are imported with nowhere to put them.
var errNoAnchorage = errors.New("no anchorage: load a scenario first or import a DXF with an anchorage outline")

func scenarioFromImport(result fleetimporter.ImportResult, current *model.Scenario) (*model.Scenario, error) {
	sc := &model.Scenario{Fleets: result.Fleets}
	switch {
	case result.Anchorage != nil:
		sc.Anchorage = *result.Anchorage
	case current != nil:
		sc.Anchorage = current.Anchorage
	default:
		return nil, errNoAnchorage
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// ─── Export Functions ──────────────────────────────────────

func (a *App) exportPDF() {
	a.exportWith("anchorage-plan.pdf", export.ExportPDF)
}

func (a *App) exportLabels() {
	a.exportWith("vessel-labels.pdf", export.ExportLabels)
}

func (a *App) exportDXF() {
	a.exportWith("anchorage-plan.dxf", export.ExportDXF)
}

func (a *App) exportReport() {
	a.exportWith("tracking-report.xlsx", export.ExportReport)
}

func (a *App) exportWith(defaultName string, exportFn func(string, export.Plan) error) {
	plan, err := export.PlanFromScene(a.scene)
	if err != nil {
		dialog.ShowInformation("Nothing to export", "Load a scenario before exporting.", a.window)
		return
	}
	a.showSaveDialog(defaultName, func(path string) error {
		if err := exportFn(path, plan); err != nil {
			return err
		}
		a.logger.Info("exported", "path", path)
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
		return nil
	})
}

// showSaveDialog asks for a destination, starting in the last export
// directory, and remembers the chosen directory.
func (a *App) showSaveDialog(defaultName string, save func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := save(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config.LastExportDir = filepath.Dir(path)
		a.persistConfig()
	}, a.window)
	d.SetFileName(defaultName)
	if a.config.LastExportDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(a.config.LastExportDir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// persistConfig saves the config, logging rather than interrupting on failure.
func (a *App) persistConfig() {
	if err := a.saveConfig(); err != nil {
		a.logger.Error("failed to save config", "err", err)
	}
}
