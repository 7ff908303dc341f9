package engine

import "github.com/piwi3910/anchorage/internal/model"

// DragSession tracks the vessel currently being dragged. It is Idle when
// no vessel is held. Move and End while Idle do nothing, so stray pointer
// events from the UI are harmless.
type DragSession struct {
	vessel  *model.Vessel
	offsetX float64 // pointer minus vessel center at drag start
	offsetY float64
}

// NewDragSession returns an idle session.
func NewDragSession() *DragSession {
	return &DragSession{}
}

// Active reports whether a vessel is being dragged.
func (s *DragSession) Active() bool {
	return s.vessel != nil
}

// Vessel returns the dragged vessel, or nil when idle.
func (s *DragSession) Vessel() *model.Vessel {
	return s.vessel
}

// Start begins dragging v from the given pointer position. The vessel's
// current position is remembered for a revert. Starting while another drag
// is in progress abandons that drag where it is.
func (s *DragSession) Start(v *model.Vessel, pointerX, pointerY float64) {
	if v == nil {
		return
	}
	s.vessel = v
	v.Remember()

	// Offset from the center keeps the grab point stable across rotations
	cx, cy := Center(v)
	s.offsetX = pointerX - cx
	s.offsetY = pointerY - cy
}

// Move repositions the dragged vessel so the grab point follows the pointer.
func (s *DragSession) Move(pointerX, pointerY float64) {
	if s.vessel == nil {
		return
	}
	centerX := pointerX - s.offsetX
	centerY := pointerY - s.offsetY
	// Position is the unrotated corner, so use nominal dimensions
	s.vessel.MoveTo(centerX-s.vessel.Width/2, centerY-s.vessel.Height/2)
}

// End drops the dragged vessel. If it overlaps any other vessel it snaps
// back to where the drag started. Returns true when the move was kept.
// The session is Idle afterwards either way.
func (s *DragSession) End(all []*model.Vessel, overlaps OverlapChecker) bool {
	if s.vessel == nil {
		return false
	}
	v := s.vessel
	s.vessel = nil
	s.offsetX, s.offsetY = 0, 0

	if overlaps != nil && overlaps.IsOverlapping(v, all) {
		v.Revert()
		return false
	}
	return true
}

// Cancel abandons the drag and restores the vessel's starting position.
func (s *DragSession) Cancel() {
	if s.vessel == nil {
		return
	}
	s.vessel.Revert()
	s.vessel = nil
	s.offsetX, s.offsetY = 0, 0
}
