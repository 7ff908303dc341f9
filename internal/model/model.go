package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Rect is an axis-aligned rectangle in scene units.
// X, Y is the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the point lies inside or on the edge of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Vessel is a movable, rotatable rectangle representing one ship.
type Vessel struct {
	ID          string   `json:"id"`
	Designation string   `json:"designation,omitempty"` // empty = untracked
	Width       float64  `json:"width"`                 // nominal, unrotated
	Height      float64  `json:"height"`                // nominal, unrotated
	X           float64  `json:"x"`                     // top-left of the unrotated box
	Y           float64  `json:"y"`
	PrevX       float64  `json:"prev_x"` // snapshot taken when a drag starts
	PrevY       float64  `json:"prev_y"`
	Rotation    Rotation `json:"rotation"`
}

func NewVessel(designation string, w, h float64) *Vessel {
	return &Vessel{
		ID:          uuid.New().String()[:8],
		Designation: designation,
		Width:       w,
		Height:      h,
	}
}

// MoveTo places the vessel's unrotated top-left corner at x, y.
func (v *Vessel) MoveTo(x, y float64) {
	v.X = x
	v.Y = y
}

// Remember stores the current position for a later Revert.
func (v *Vessel) Remember() {
	v.PrevX = v.X
	v.PrevY = v.Y
}

// Revert moves the vessel back to the last remembered position.
func (v *Vessel) Revert() {
	v.X = v.PrevX
	v.Y = v.PrevY
}

// Anchorage is the drop target. Its top-left corner on screen is
// LayoutConfig.OriginX/OriginY, not part of the entity.
type Anchorage struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Dimensions is the unit size of one ship before display scaling.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Fleet describes Count vessels of one type.
type Fleet struct {
	Dimensions  Dimensions `json:"singleShipDimensions"`
	Designation string     `json:"shipDesignation"`
	Count       int        `json:"shipCount"`
}

// Scenario is one anchorage plus the fleets to place in it.
type Scenario struct {
	Anchorage Anchorage `json:"anchorageSize"`
	Fleets    []Fleet   `json:"fleets"`
}

// ErrInvalidScenario is wrapped by every Scenario.Validate failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Validate rejects scenarios that cannot be laid out.
func (s Scenario) Validate() error {
	if s.Anchorage.Width <= 0 || s.Anchorage.Height <= 0 {
		return fmt.Errorf("%w: anchorage must have positive size, got %.0fx%.0f",
			ErrInvalidScenario, s.Anchorage.Width, s.Anchorage.Height)
	}
	for i, f := range s.Fleets {
		if f.Count < 0 {
			return fmt.Errorf("%w: fleet %d (%q) has negative count %d", ErrInvalidScenario, i, f.Designation, f.Count)
		}
		if f.Dimensions.Width <= 0 || f.Dimensions.Height <= 0 {
			return fmt.Errorf("%w: fleet %d (%q) has non-positive dimensions %dx%d",
				ErrInvalidScenario, i, f.Designation, f.Dimensions.Width, f.Dimensions.Height)
		}
	}
	return nil
}

// TotalVessels returns the number of vessels the scenario expands to.
func (s Scenario) TotalVessels() int {
	total := 0
	for _, f := range s.Fleets {
		if f.Count > 0 {
			total += f.Count
		}
	}
	return total
}

// TrackingEntry is the placement count for one designation.
type TrackingEntry struct {
	Designation string `json:"designation"`
	Placed      int    `json:"placed"`
	Total       int    `json:"total"`
}

// Complete reports whether every required vessel of this type is placed.
func (e TrackingEntry) Complete() bool {
	return e.Placed >= e.Total
}

// Pose is the mutable part of a vessel, used for undo snapshots.
type Pose struct {
	X        float64
	Y        float64
	Rotation Rotation
}
