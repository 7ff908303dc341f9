package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/anchorage/internal/model"
)

// stubOverlap answers IsOverlapping with a fixed value and records calls.
type stubOverlap struct {
	result bool
	calls  int
}

func (s *stubOverlap) IsOverlapping(*model.Vessel, []*model.Vessel) bool {
	s.calls++
	return s.result
}

func TestDragStart_SavesPreviousPosition(t *testing.T) {
	v := vesselAt(100, 150, 50, 50)
	s := NewDragSession()

	s.Start(v, 120, 170)

	assert.True(t, s.Active())
	assert.Same(t, v, s.Vessel())
	assert.Equal(t, 100.0, v.PrevX)
	assert.Equal(t, 150.0, v.PrevY)
}

func TestDragMove_PreservesGrabOffset(t *testing.T) {
	v := vesselAt(100, 150, 50, 50)
	s := NewDragSession()

	s.Start(v, 120, 170)
	s.Move(200, 250)

	assert.Equal(t, 180.0, v.X)
	assert.Equal(t, 230.0, v.Y)
}

func TestDragMove_RotatedVesselUsesNominalSize(t *testing.T) {
	v := vesselAt(0, 0, 100, 20)
	v.Rotation = model.Rotate90
	s := NewDragSession()

	// Grab the exact center; the center should then follow the pointer.
	s.Start(v, 50, 10)
	s.Move(300, 400)

	cx, cy := Center(v)
	assert.Equal(t, 300.0, cx)
	assert.Equal(t, 400.0, cy)
	assert.Equal(t, 250.0, v.X)
	assert.Equal(t, 390.0, v.Y)
}

func TestDragEnd_KeepsPositionWhenNoOverlap(t *testing.T) {
	v := vesselAt(100, 150, 50, 50)
	all := []*model.Vessel{v}
	detector := &stubOverlap{result: false}
	s := NewDragSession()

	s.Start(v, 120, 170)
	s.Move(200, 250)
	kept := s.End(all, detector)

	assert.True(t, kept)
	assert.Equal(t, 1, detector.calls)
	assert.Equal(t, 180.0, v.X)
	assert.Equal(t, 230.0, v.Y)
	assert.False(t, s.Active())
}

func TestDragEnd_SnapsBackWhenOverlapDetected(t *testing.T) {
	v := vesselAt(100, 150, 50, 50)
	all := []*model.Vessel{v}
	s := NewDragSession()

	s.Start(v, 120, 170)
	s.Move(200, 250)
	kept := s.End(all, &stubOverlap{result: true})

	assert.False(t, kept)
	assert.Equal(t, 100.0, v.X)
	assert.Equal(t, 150.0, v.Y)
	assert.False(t, s.Active())
	assert.Nil(t, s.Vessel())
}

func TestDragEnd_WithRealDetector(t *testing.T) {
	moving := vesselAt(0, 0, 50, 50)
	parked := vesselAt(200, 0, 50, 50)
	all := []*model.Vessel{moving, parked}
	s := NewDragSession()

	s.Start(moving, 25, 25)
	s.Move(215, 25) // lands on top of parked
	assert.False(t, s.End(all, testDetector()))
	assert.Equal(t, 0.0, moving.X)

	s.Start(moving, 25, 25)
	s.Move(175, 25) // touches parked's left edge exactly
	assert.True(t, s.End(all, testDetector()))
	assert.Equal(t, 150.0, moving.X)
}

func TestDrag_IdleEventsAreNoOps(t *testing.T) {
	s := NewDragSession()
	detector := &stubOverlap{result: true}

	s.Move(10, 10)
	assert.False(t, s.End(nil, detector))
	assert.Zero(t, detector.calls)
	assert.False(t, s.Active())

	s.Start(nil, 1, 1)
	assert.False(t, s.Active(), "starting with no vessel stays idle")
}

func TestDragStart_WhileDraggingAbandonsPrevious(t *testing.T) {
	first := vesselAt(0, 0, 10, 10)
	second := vesselAt(100, 100, 10, 10)
	s := NewDragSession()

	s.Start(first, 5, 5)
	s.Move(55, 55)
	s.Start(second, 105, 105)
	s.Move(205, 205)
	s.End([]*model.Vessel{first, second}, &stubOverlap{result: true})

	assert.Equal(t, 50.0, first.X, "previous vessel stays where the last move left it")
	assert.Equal(t, 50.0, first.Y)
	assert.Equal(t, 100.0, second.X, "current vessel reverts")
	assert.Equal(t, 100.0, second.Y)
}

func TestDragCancel_Restores(t *testing.T) {
	v := vesselAt(10, 20, 10, 10)
	s := NewDragSession()

	s.Start(v, 15, 25)
	s.Move(100, 100)
	s.Cancel()

	assert.Equal(t, 10.0, v.X)
	assert.Equal(t, 20.0, v.Y)
	assert.False(t, s.Active())
	s.Cancel()
}
