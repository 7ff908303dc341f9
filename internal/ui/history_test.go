package ui

import (
	"testing"

	"github.com/piwi3910/anchorage/internal/model"
)

func poses(xs ...float64) []model.Pose {
	out := make([]model.Pose, len(xs))
	for i, x := range xs {
		out[i] = model.Pose{X: x, Y: 10}
	}
	return out
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(poses(0, 50), "initial"))
	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	restored, ok := h.Undo(MakeSnapshot(poses(100, 50), "Move Tug"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Poses[0].X != 0 {
		t.Errorf("expected first vessel back at x=0, got %f", restored.Poses[0].X)
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(poses(0), "start"))

	restored, ok := h.Undo(MakeSnapshot(poses(40), "moved"))
	if !ok {
		t.Fatal("undo should succeed")
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Poses[0].X != 40 {
		t.Errorf("expected x=40 after redo, got %f", redone.Poses[0].X)
	}
	if !h.CanUndo() {
		t.Error("redo should make the restored state undoable again")
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(poses(0), "start"))

	if _, ok := h.Undo(MakeSnapshot(poses(1), "current")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(poses(2), "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(poses(float64(i)), ""))
	}

	if len(h.undoStack) != 3 {
		t.Fatalf("expected undo stack length 3, got %d", len(h.undoStack))
	}
	if h.undoStack[0].Poses[0].X != 2 {
		t.Errorf("oldest kept snapshot should be #2, got x=%f", h.undoStack[0].Poses[0].X)
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(nil, "current")
	if _, ok := h.Undo(current); ok {
		t.Error("undo on empty history should return false")
	}
	if _, ok := h.Redo(current); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "a"))
	h.Push(MakeSnapshot(nil, "b"))
	h.Undo(MakeSnapshot(nil, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestMakeSnapshotCopies(t *testing.T) {
	original := poses(5)
	snap := MakeSnapshot(original, "test")

	original[0].X = 999
	original[0].Rotation = model.Rotate90

	if snap.Poses[0].X != 5 || snap.Poses[0].Rotation != model.Rotate0 {
		t.Error("snapshot should be independent of original slice")
	}
	if MakeSnapshot(nil, "nil").Poses != nil {
		t.Error("nil poses should stay nil")
	}
}
