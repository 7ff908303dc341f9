package engine

import "github.com/piwi3910/anchorage/internal/model"

// OverlapChecker decides whether a vessel collides with any other vessel.
type OverlapChecker interface {
	IsOverlapping(subject *model.Vessel, others []*model.Vessel) bool
}

// OverlapDetector tests bounding boxes for strict intersection.
// Boxes that only share an edge, or miss each other by less than Epsilon,
// are not overlapping.
type OverlapDetector struct {
	Epsilon float64
}

// NewOverlapDetector uses the configured edge tolerance.
func NewOverlapDetector(cfg model.LayoutConfig) *OverlapDetector {
	return &OverlapDetector{Epsilon: cfg.Epsilon}
}

// IsOverlapping reports whether subject overlaps any vessel in others.
// The subject itself is skipped when it appears in others.
func (d *OverlapDetector) IsOverlapping(subject *model.Vessel, others []*model.Vessel) bool {
	if subject == nil {
		return false
	}
	box := BoundingBox(subject)
	for _, other := range others {
		if other == nil || other == subject {
			continue
		}
		if d.boxesOverlap(box, BoundingBox(other)) {
			return true
		}
	}
	return false
}

// Overlaps returns every vessel in others that subject collides with.
func (d *OverlapDetector) Overlaps(subject *model.Vessel, others []*model.Vessel) []*model.Vessel {
	if subject == nil {
		return nil
	}
	box := BoundingBox(subject)
	var hits []*model.Vessel
	for _, other := range others {
		if other == nil || other == subject {
			continue
		}
		if d.boxesOverlap(box, BoundingBox(other)) {
			hits = append(hits, other)
		}
	}
	return hits
}

// boxesOverlap returns true if both intervals overlap by more than Epsilon.
func (d *OverlapDetector) boxesOverlap(a, b model.Rect) bool {
	eps := d.Epsilon
	return a.X < b.Right()-eps && a.Right() > b.X+eps &&
		a.Y < b.Bottom()-eps && a.Bottom() > b.Y+eps
}
