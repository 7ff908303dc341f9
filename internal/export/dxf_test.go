package export

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/anchorage/internal/engine"
	"github.com/piwi3910/anchorage/internal/importer"
	"github.com/piwi3910/anchorage/internal/model"
)

func TestExportDXF_ReadsBackAsScenario(t *testing.T) {
	s := engine.NewScene(model.DefaultLayoutConfig(), log.New(io.Discard))
	s.Load(&model.Scenario{
		Anchorage: model.Anchorage{Width: 10, Height: 10},
		Fleets: []model.Fleet{
			{Designation: "Tug", Count: 2, Dimensions: model.Dimensions{Width: 2, Height: 3}},
		},
	})
	s.Restore([]model.Pose{{X: 52, Y: 202}, {X: 132, Y: 202}})
	plan, err := PlanFromScene(s)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "plan.dxf")
	if err := ExportDXF(path, plan); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	result := importer.ImportDXF(path)
	if len(result.Errors) != 0 {
		t.Fatalf("import errors: %v", result.Errors)
	}
	if result.Anchorage == nil || result.Anchorage.Width != 10 || result.Anchorage.Height != 10 {
		t.Errorf("expected 10x10 anchorage, got %+v", result.Anchorage)
	}
	if len(result.Fleets) != 1 {
		t.Fatalf("expected 1 fleet, got %+v", result.Fleets)
	}
	want := model.Fleet{Designation: "Tug", Count: 2, Dimensions: model.Dimensions{Width: 2, Height: 3}}
	if result.Fleets[0] != want {
		t.Errorf("expected %+v, got %+v", want, result.Fleets[0])
	}
}

func TestExportDXF_EmptyPlan(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "empty.dxf"), Plan{})
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
}
