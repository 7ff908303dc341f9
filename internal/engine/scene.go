package engine

import (
	"github.com/charmbracelet/log"

	"github.com/piwi3910/anchorage/internal/model"
)

// Scene is the single in-memory planning session: the anchorage, the
// generated vessels and the components that move and count them.
// It is not safe for concurrent use; callers drive it from one event loop.
type Scene struct {
	Config    model.LayoutConfig
	Anchorage *model.Anchorage // in screen units
	Fleets    []model.Fleet
	Vessels   []*model.Vessel

	drag        *DragSession
	tracker     *PlacementTracker
	overlap     *OverlapDetector
	containment *ContainmentChecker
	packer      *Packer
	logger      *log.Logger
}

// NewScene creates an empty scene. A nil logger uses the package default.
func NewScene(cfg model.LayoutConfig, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.Default()
	}
	return &Scene{
		Config:      cfg,
		drag:        NewDragSession(),
		tracker:     NewPlacementTracker(),
		overlap:     NewOverlapDetector(cfg),
		containment: NewContainmentChecker(cfg),
		packer:      NewPacker(cfg),
		logger:      logger,
	}
}

// Load replaces the whole scene with a freshly laid out scenario.
// A nil scenario leaves an empty scene.
func (s *Scene) Load(sc *model.Scenario) {
	s.drag = NewDragSession()
	if sc == nil {
		s.Anchorage = nil
		s.Fleets = nil
		s.Vessels = nil
		s.tracker.Initialize(nil)
		return
	}

	s.Anchorage = &model.Anchorage{
		Width:  sc.Anchorage.Width * s.Config.ScaleFactor,
		Height: sc.Anchorage.Height * s.Config.ScaleFactor,
	}
	s.Fleets = append([]model.Fleet(nil), sc.Fleets...)
	s.Vessels = s.packer.GenerateLayout(s.Fleets, s.Anchorage.Width, s.Config.Columns)
	s.tracker.Initialize(s.Fleets)
	s.refresh()

	s.logger.Debug("scene loaded",
		"anchorage", s.Anchorage,
		"fleets", len(s.Fleets),
		"vessels", len(s.Vessels))
}

// Loaded reports whether a scenario is in place.
func (s *Scene) Loaded() bool {
	return s.Anchorage != nil
}

// AnchorageBounds returns the anchorage rectangle in screen coordinates.
func (s *Scene) AnchorageBounds() model.Rect {
	return s.containment.Bounds(s.Anchorage)
}

// VesselAt returns the topmost vessel whose bounding box contains the
// point, or nil.
func (s *Scene) VesselAt(x, y float64) *model.Vessel {
	for i := len(s.Vessels) - 1; i >= 0; i-- {
		if BoundingBox(s.Vessels[i]).Contains(x, y) {
			return s.Vessels[i]
		}
	}
	return nil
}

// Dragging returns the vessel currently held, or nil.
func (s *Scene) Dragging() *model.Vessel {
	return s.drag.Vessel()
}

// BeginDrag picks up v with the pointer at x, y.
func (s *Scene) BeginDrag(v *model.Vessel, x, y float64) {
	s.drag.Start(v, x, y)
}

// DragTo moves the held vessel with the pointer and recounts placement.
func (s *Scene) DragTo(x, y float64) {
	if !s.drag.Active() {
		return
	}
	s.drag.Move(x, y)
	s.refresh()
}

// EndDrag drops the held vessel. It returns true when the move was kept
// and false when the vessel snapped back or nothing was held.
func (s *Scene) EndDrag() bool {
	v := s.drag.Vessel()
	if v == nil {
		return false
	}
	kept := s.drag.End(s.Vessels, s.overlap)
	if !kept {
		s.logger.Debug("drop overlaps another vessel, reverting", "vessel", v.ID, "designation", v.Designation)
	}
	s.refresh()
	return kept
}

// CancelDrag abandons the current drag and restores the vessel.
func (s *Scene) CancelDrag() {
	s.drag.Cancel()
	s.refresh()
}

// Rotate turns a vessel a quarter turn clockwise and recounts placement.
func (s *Scene) Rotate(v *model.Vessel) error {
	if err := Rotate(v); err != nil {
		return err
	}
	s.refresh()
	return nil
}

// Tracking returns the placement counts sorted by designation.
func (s *Scene) Tracking() []model.TrackingEntry {
	return s.tracker.Entries()
}

// TrackingInfo returns the placement counts keyed by designation.
func (s *Scene) TrackingInfo() map[string]model.TrackingEntry {
	return s.tracker.TrackingInfo()
}

// Complete reports whether every required vessel has been placed.
func (s *Scene) Complete() bool {
	return s.tracker.AllPlaced()
}

// InAnchorage reports whether a vessel currently sits inside the anchorage.
func (s *Scene) InAnchorage(v *model.Vessel) bool {
	return s.containment.IsInAnchorage(v, s.Anchorage)
}

// Conflicts returns the vessels that currently overlap another vessel.
func (s *Scene) Conflicts() []*model.Vessel {
	var out []*model.Vessel
	for _, v := range s.Vessels {
		if s.overlap.IsOverlapping(v, s.Vessels) {
			out = append(out, v)
		}
	}
	return out
}

// Snapshot captures every vessel's pose, in vessel order.
func (s *Scene) Snapshot() []model.Pose {
	poses := make([]model.Pose, len(s.Vessels))
	for i, v := range s.Vessels {
		poses[i] = model.Pose{X: v.X, Y: v.Y, Rotation: v.Rotation}
	}
	return poses
}

// Restore applies poses captured by Snapshot. Besides Rotate, it is the
// only writer of a vessel's rotation: undo and redo put back orientations
// that Rotate produced earlier. A snapshot from a different scenario
// (length mismatch) is ignored and false is returned.
func (s *Scene) Restore(poses []model.Pose) bool {
	if len(poses) != len(s.Vessels) {
		return false
	}
	for i, p := range poses {
		v := s.Vessels[i]
		v.MoveTo(p.X, p.Y)
		v.Rotation = p.Rotation
	}
	s.refresh()
	return true
}

func (s *Scene) refresh() {
	s.tracker.Update(s.Vessels, s.Anchorage, s.containment)
}
