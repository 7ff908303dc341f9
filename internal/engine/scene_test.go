package engine

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/anchorage/internal/model"
)

// newTestScene loads a 10x10 anchorage (200x200 on screen at 32,162) and
// two 1x1 "A" vessels plus one undesignated 2x1 vessel.
func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene(model.DefaultLayoutConfig(), log.New(io.Discard))
	s.Load(&model.Scenario{
		Anchorage: model.Anchorage{Width: 10, Height: 10},
		Fleets: []model.Fleet{
			{Designation: "A", Count: 2, Dimensions: model.Dimensions{Width: 1, Height: 1}},
			{Designation: "", Count: 1, Dimensions: model.Dimensions{Width: 2, Height: 1}},
		},
	})
	require.Len(t, s.Vessels, 3)
	return s
}

// dragCenterTo drags v by its center and drops it with its center at x, y.
func dragCenterTo(s *Scene, v *model.Vessel, x, y float64) bool {
	cx, cy := Center(v)
	s.BeginDrag(v, cx, cy)
	s.DragTo(x, y)
	return s.EndDrag()
}

func TestSceneLoad_ScalesAnchorageAndLaysOut(t *testing.T) {
	s := newTestScene(t)

	require.True(t, s.Loaded())
	assert.Equal(t, 200.0, s.Anchorage.Width)
	assert.Equal(t, 200.0, s.Anchorage.Height)
	assert.Equal(t, model.Rect{X: 32, Y: 162, Width: 200, Height: 200}, s.AnchorageBounds())
	assert.Equal(t, 250.0, s.Vessels[0].X, "first column sits right of the anchorage")

	info := s.TrackingInfo()
	require.Len(t, info, 1)
	assert.Equal(t, model.TrackingEntry{Designation: "A", Placed: 0, Total: 2}, info["A"])
	assert.False(t, s.Complete())
	assert.Empty(t, s.Conflicts())
}

func TestSceneLoad_NilClears(t *testing.T) {
	s := newTestScene(t)

	s.Load(nil)

	assert.False(t, s.Loaded())
	assert.Empty(t, s.Vessels)
	assert.Empty(t, s.Tracking())
	assert.False(t, s.Complete())
}

func TestSceneDrag_PlacesAndCounts(t *testing.T) {
	s := newTestScene(t)
	a1, a2 := s.Vessels[0], s.Vessels[1]

	require.True(t, dragCenterTo(s, a1, 100, 200))
	assert.Equal(t, 90.0, a1.X)
	assert.Equal(t, 190.0, a1.Y)
	assert.True(t, s.InAnchorage(a1))
	assert.Equal(t, 1, s.TrackingInfo()["A"].Placed)

	require.True(t, dragCenterTo(s, a2, 150, 200))
	assert.Equal(t, 2, s.TrackingInfo()["A"].Placed)
	assert.True(t, s.Complete())
}

func TestSceneDrag_OverlapSnapsBack(t *testing.T) {
	s := newTestScene(t)
	a1, a2 := s.Vessels[0], s.Vessels[1]
	require.True(t, dragCenterTo(s, a1, 100, 200))
	startX, startY := a2.X, a2.Y

	kept := dragCenterTo(s, a2, 105, 205)

	assert.False(t, kept)
	assert.Equal(t, startX, a2.X)
	assert.Equal(t, startY, a2.Y)
	assert.Equal(t, 1, s.TrackingInfo()["A"].Placed)
	assert.Nil(t, s.Dragging())
}

func TestSceneDrag_UndesignatedVesselNotCounted(t *testing.T) {
	s := newTestScene(t)
	anon := s.Vessels[2]

	require.True(t, dragCenterTo(s, anon, 100, 300))

	assert.True(t, s.InAnchorage(anon))
	assert.Equal(t, 0, s.TrackingInfo()["A"].Placed)
}

func TestSceneDrag_IdleEvents(t *testing.T) {
	s := newTestScene(t)

	s.DragTo(100, 100)
	assert.False(t, s.EndDrag())
	s.CancelDrag()
	s.BeginDrag(nil, 0, 0)
	assert.Nil(t, s.Dragging())
}

func TestSceneCancelDrag_Restores(t *testing.T) {
	s := newTestScene(t)
	v := s.Vessels[0]
	x, y := v.X, v.Y

	cx, cy := Center(v)
	s.BeginDrag(v, cx, cy)
	s.DragTo(100, 200)
	assert.Same(t, v, s.Dragging())
	assert.Equal(t, 1, s.TrackingInfo()["A"].Placed, "counts follow the pointer")

	s.CancelDrag()
	assert.Equal(t, x, v.X)
	assert.Equal(t, y, v.Y)
	assert.Equal(t, 0, s.TrackingInfo()["A"].Placed)
}

func TestSceneRotate_RecountsPlacement(t *testing.T) {
	s := NewScene(model.DefaultLayoutConfig(), log.New(io.Discard))
	s.Load(&model.Scenario{
		Anchorage: model.Anchorage{Width: 10, Height: 2},
		Fleets: []model.Fleet{
			{Designation: "Long", Count: 1, Dimensions: model.Dimensions{Width: 4, Height: 1}},
		},
	})
	v := s.Vessels[0] // 80x20, anchorage 200x40 at 32,162
	require.True(t, dragCenterTo(s, v, 132, 182))
	assert.Equal(t, 1, s.TrackingInfo()["Long"].Placed)

	require.NoError(t, s.Rotate(v))
	assert.Equal(t, model.Rotate90, v.Rotation)
	assert.Equal(t, 0, s.TrackingInfo()["Long"].Placed, "rotated box is 80 tall, anchorage only 40")

	require.NoError(t, s.Rotate(v))
	assert.Equal(t, 1, s.TrackingInfo()["Long"].Placed)

	assert.ErrorIs(t, s.Rotate(nil), ErrNilVessel)
}

func TestSceneVesselAt_TopmostWins(t *testing.T) {
	s := newTestScene(t)
	a1, a2 := s.Vessels[0], s.Vessels[1]
	a1.MoveTo(100, 200)
	a2.MoveTo(110, 210)

	assert.Same(t, a2, s.VesselAt(115, 215))
	assert.Same(t, a1, s.VesselAt(101, 201))
	assert.Nil(t, s.VesselAt(0, 0))
}

func TestSceneConflicts(t *testing.T) {
	s := newTestScene(t)
	a1, a2 := s.Vessels[0], s.Vessels[1]
	a1.MoveTo(100, 200)
	a2.MoveTo(110, 210)

	conflicts := s.Conflicts()

	require.Len(t, conflicts, 2)
	assert.Contains(t, conflicts, a1)
	assert.Contains(t, conflicts, a2)
}

func TestSceneSnapshotRestore(t *testing.T) {
	s := newTestScene(t)
	before := s.Snapshot()

	require.True(t, dragCenterTo(s, s.Vessels[0], 100, 200))
	require.NoError(t, s.Rotate(s.Vessels[1]))
	assert.Equal(t, 1, s.TrackingInfo()["A"].Placed)

	require.True(t, s.Restore(before))
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 0, s.TrackingInfo()["A"].Placed)

	assert.False(t, s.Restore(before[:1]), "mismatched snapshot is rejected")
}
