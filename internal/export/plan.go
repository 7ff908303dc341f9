// Package export writes anchorage plans to PDF, label sheets, DXF drawings
// and spreadsheet reports.
package export

import (
	"errors"
	"sort"

	"github.com/piwi3910/anchorage/internal/engine"
	"github.com/piwi3910/anchorage/internal/model"
)

// ErrEmptyPlan is returned when there is nothing to export.
var ErrEmptyPlan = errors.New("no anchorage plan to export")

// VesselState is one vessel as it sits at export time.
type VesselState struct {
	Vessel *model.Vessel
	Box    model.Rect // rotated bounding box, screen units
	Placed bool       // inside the anchorage
}

// Plan is a read-only snapshot of a scene for the exporters.
type Plan struct {
	Anchorage model.Rect // screen units
	Scale     float64    // screen units per ship unit
	Vessels   []VesselState
	Tracking  []model.TrackingEntry
}

// PlanFromScene captures the scene. A scene without a scenario yields
// ErrEmptyPlan.
func PlanFromScene(s *engine.Scene) (Plan, error) {
	if s == nil || !s.Loaded() {
		return Plan{}, ErrEmptyPlan
	}
	scale := s.Config.ScaleFactor
	if scale <= 0 {
		scale = 1
	}
	p := Plan{
		Anchorage: s.AnchorageBounds(),
		Scale:     scale,
		Tracking:  s.Tracking(),
	}
	for _, v := range s.Vessels {
		p.Vessels = append(p.Vessels, VesselState{
			Vessel: v,
			Box:    engine.BoundingBox(v),
			Placed: s.InAnchorage(v),
		})
	}
	return p, nil
}

// Empty reports whether the plan has nothing worth exporting.
func (p Plan) Empty() bool {
	return p.Anchorage.Width <= 0 || p.Anchorage.Height <= 0
}

// PlacedCount returns the number of vessels inside the anchorage.
func (p Plan) PlacedCount() int {
	n := 0
	for _, vs := range p.Vessels {
		if vs.Placed {
			n++
		}
	}
	return n
}

// Extent returns the rectangle covering the anchorage and every vessel.
func (p Plan) Extent() model.Rect {
	minX, minY := p.Anchorage.X, p.Anchorage.Y
	maxX, maxY := p.Anchorage.Right(), p.Anchorage.Bottom()
	for _, vs := range p.Vessels {
		minX = min(minX, vs.Box.X)
		minY = min(minY, vs.Box.Y)
		maxX = max(maxX, vs.Box.Right())
		maxY = max(maxY, vs.Box.Bottom())
	}
	return model.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// units converts a screen length to ship units.
func (p Plan) units(screen float64) float64 {
	return screen / p.Scale
}

// designationIndex assigns each designation a stable palette slot, in
// sorted order. Untracked vessels share slot -1.
func (p Plan) designationIndex() map[string]int {
	names := make(map[string]struct{})
	for _, vs := range p.Vessels {
		if vs.Vessel.Designation != "" {
			names[vs.Vessel.Designation] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	idx := make(map[string]int, len(sorted)+1)
	idx[""] = -1
	for i, n := range sorted {
		idx[n] = i
	}
	return idx
}
