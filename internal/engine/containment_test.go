package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/anchorage/internal/model"
)

func testContainment() *ContainmentChecker {
	cfg := model.DefaultLayoutConfig()
	cfg.OriginX = 32
	cfg.OriginY = 82
	return NewContainmentChecker(cfg)
}

func TestIsInAnchorage_FullyInside(t *testing.T) {
	v := vesselAt(50, 100, 50, 50)
	a := &model.Anchorage{Width: 500, Height: 500}

	assert.True(t, testContainment().IsInAnchorage(v, a))
}

func TestIsInAnchorage_OutsideBoundary(t *testing.T) {
	v := vesselAt(600, 100, 50, 50)
	a := &model.Anchorage{Width: 500, Height: 500}

	assert.False(t, testContainment().IsInAnchorage(v, a))
}

func TestIsInAnchorage_EdgesAreInclusive(t *testing.T) {
	a := &model.Anchorage{Width: 100, Height: 100}
	c := testContainment()

	assert.True(t, c.IsInAnchorage(vesselAt(32, 82, 100, 100), a), "exact fit")
	assert.True(t, c.IsInAnchorage(vesselAt(32.0005, 82, 100, 100), a), "within epsilon")
	assert.False(t, c.IsInAnchorage(vesselAt(31, 82, 50, 50), a), "sticks out left")
	assert.False(t, c.IsInAnchorage(vesselAt(100, 82, 50, 50), a), "sticks out right")
	assert.False(t, c.IsInAnchorage(vesselAt(32, 81, 50, 50), a), "sticks out top")
	assert.False(t, c.IsInAnchorage(vesselAt(32, 140, 50, 50), a), "sticks out bottom")
}

func TestIsInAnchorage_UsesRotatedBox(t *testing.T) {
	a := &model.Anchorage{Width: 100, Height: 150}
	c := testContainment()

	// 120x20 does not fit horizontally, but rotated about its center it does
	v := vesselAt(22, 122, 120, 20)
	assert.False(t, c.IsInAnchorage(v, a))

	v.Rotation = model.Rotate90
	box := BoundingBox(v)
	assert.InDelta(t, 72.0, box.X, 1e-9)
	assert.InDelta(t, 72.0, box.Y, 1e-9)
	assert.False(t, c.IsInAnchorage(v, a), "rotated box now sticks out the top")

	v.MoveTo(22, 142)
	assert.True(t, c.IsInAnchorage(v, a))
}

func TestIsInAnchorage_MissingInput(t *testing.T) {
	c := testContainment()
	assert.False(t, c.IsInAnchorage(nil, &model.Anchorage{Width: 10, Height: 10}))
	assert.False(t, c.IsInAnchorage(vesselAt(40, 90, 1, 1), nil))
}

func TestAllInAnchorage(t *testing.T) {
	a := &model.Anchorage{Width: 500, Height: 500}
	c := testContainment()

	inside := []*model.Vessel{vesselAt(50, 100, 50, 50), vesselAt(150, 150, 50, 50)}
	assert.True(t, c.AllInAnchorage(inside, a))

	mixed := []*model.Vessel{vesselAt(50, 100, 50, 50), vesselAt(600, 150, 50, 50)}
	assert.False(t, c.AllInAnchorage(mixed, a))

	assert.True(t, c.AllInAnchorage(nil, a), "empty collection is vacuously inside")
	assert.False(t, c.AllInAnchorage(inside, nil))
}

func TestBounds(t *testing.T) {
	c := testContainment()
	assert.Equal(t, model.Rect{X: 32, Y: 82, Width: 300, Height: 200}, c.Bounds(&model.Anchorage{Width: 300, Height: 200}))
	assert.Equal(t, model.Rect{X: 32, Y: 82}, c.Bounds(nil))
}
