// Package engine implements the spatial rules of the anchorage planner:
// rotation-aware bounding boxes, overlap and containment tests, the initial
// column layout, drag handling and placement tracking.
package engine

import "github.com/piwi3910/anchorage/internal/model"

// EffectiveWidth returns the on-screen width considering rotation.
func EffectiveWidth(v *model.Vessel) float64 {
	if v == nil {
		return 0
	}
	if v.Rotation.QuarterTurn() {
		return v.Height
	}
	return v.Width
}

// EffectiveHeight returns the on-screen height considering rotation.
func EffectiveHeight(v *model.Vessel) float64 {
	if v == nil {
		return 0
	}
	if v.Rotation.QuarterTurn() {
		return v.Width
	}
	return v.Height
}

// Center returns the midpoint of the vessel's unrotated box, which is also
// the pivot for rotation.
func Center(v *model.Vessel) (float64, float64) {
	return v.X + v.Width/2, v.Y + v.Height/2
}

// BoundingBox returns the axis-aligned box the vessel occupies on screen.
// Rotation pivots around the center, so a quarter turn swaps the box's
// extents while keeping the same midpoint.
func BoundingBox(v *model.Vessel) model.Rect {
	if v == nil {
		return model.Rect{}
	}
	cx, cy := Center(v)
	w := EffectiveWidth(v)
	h := EffectiveHeight(v)
	return model.Rect{
		X:      cx - w/2,
		Y:      cy - h/2,
		Width:  w,
		Height: h,
	}
}
