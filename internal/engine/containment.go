package engine

import "github.com/piwi3910/anchorage/internal/model"

// ContainmentTester decides whether a vessel lies inside the anchorage.
type ContainmentTester interface {
	IsInAnchorage(v *model.Vessel, a *model.Anchorage) bool
}

// ContainmentChecker tests vessels against the anchorage rectangle, which
// sits at a fixed screen origin supplied by the layout configuration.
type ContainmentChecker struct {
	OriginX float64
	OriginY float64
	Epsilon float64
}

// NewContainmentChecker places the anchorage at the configured origin.
func NewContainmentChecker(cfg model.LayoutConfig) *ContainmentChecker {
	return &ContainmentChecker{
		OriginX: cfg.OriginX,
		OriginY: cfg.OriginY,
		Epsilon: cfg.Epsilon,
	}
}

// Bounds returns the anchorage rectangle in screen coordinates.
func (c *ContainmentChecker) Bounds(a *model.Anchorage) model.Rect {
	if a == nil {
		return model.Rect{X: c.OriginX, Y: c.OriginY}
	}
	return model.Rect{X: c.OriginX, Y: c.OriginY, Width: a.Width, Height: a.Height}
}

// IsInAnchorage reports whether the vessel's bounding box lies fully inside
// the anchorage, allowing Epsilon of slack on every edge.
func (c *ContainmentChecker) IsInAnchorage(v *model.Vessel, a *model.Anchorage) bool {
	if v == nil || a == nil {
		return false
	}
	box := BoundingBox(v)
	area := c.Bounds(a)
	eps := c.Epsilon

	leftInside := box.X >= area.X-eps
	rightInside := box.Right() <= area.Right()+eps
	topInside := box.Y >= area.Y-eps
	bottomInside := box.Bottom() <= area.Bottom()+eps

	return leftInside && rightInside && topInside && bottomInside
}

// AllInAnchorage reports whether every vessel is inside the anchorage.
// An empty collection is trivially inside.
func (c *ContainmentChecker) AllInAnchorage(vessels []*model.Vessel, a *model.Anchorage) bool {
	if a == nil {
		return false
	}
	for _, v := range vessels {
		if !c.IsInAnchorage(v, a) {
			return false
		}
	}
	return true
}
