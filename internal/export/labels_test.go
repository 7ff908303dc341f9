package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestPlan(t)); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyPlan(t *testing.T) {
	err := ExportLabels(filepath.Join(t.TempDir(), "empty.pdf"), Plan{})
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestPlan(t))

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}

	first := labels[0]
	if first.Designation != "Tug" {
		t.Errorf("expected first label to be Tug, got %q", first.Designation)
	}
	if first.Width != 2 || first.Height != 3 {
		t.Errorf("wrong dimensions: got %.0fx%.0f, want 2x3", first.Width, first.Height)
	}
	if first.X != 1 || first.Y != 2 {
		t.Errorf("wrong position: got (%.1f, %.1f), want (1, 2)", first.X, first.Y)
	}
	if !first.Placed || first.Rotation != 0 {
		t.Errorf("expected placed unrotated vessel, got %+v", first)
	}

	if labels[1].Rotation != 90 {
		t.Errorf("expected second label rotated 90, got %.0f", labels[1].Rotation)
	}
	if labels[2].Placed {
		t.Error("expected the untracked vessel to be waiting")
	}
}

func TestLabelInfo_JSONKeys(t *testing.T) {
	data, err := json.Marshal(LabelInfo{ID: "abc12345", Designation: "Tug", Width: 2, Height: 3, Rotation: 90})
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "designation", "width", "height", "rotation", "x", "y", "placed"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("QR payload missing key %q", key)
		}
	}
}
