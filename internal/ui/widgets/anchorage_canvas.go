package widgets

import (
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/anchorage/internal/engine"
	"github.com/piwi3910/anchorage/internal/model"
)

// Vessel colors, one per designation in sorted order.
var vesselColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 220},  // green
	{R: 33, G: 150, B: 243, A: 220}, // blue
	{R: 255, G: 152, B: 0, A: 220},  // orange
	{R: 156, G: 39, B: 176, A: 220}, // purple
	{R: 0, G: 188, B: 212, A: 220},  // cyan
	{R: 244, G: 67, B: 54, A: 220},  // red
	{R: 255, G: 235, B: 59, A: 220}, // yellow
	{R: 121, G: 85, B: 72, A: 220},  // brown
}

var (
	untrackedColor = color.NRGBA{R: 158, G: 158, B: 158, A: 220}
	waterColor     = color.NRGBA{R: 187, G: 222, B: 251, A: 255}
	shoreColor     = color.NRGBA{R: 13, G: 71, B: 161, A: 255}
	conflictColor  = color.NRGBA{R: 211, G: 47, B: 47, A: 255}
	outlineColor   = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	heldColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// AnchorageCanvas draws a scene and turns pointer input into scene
// operations: drag to move a vessel, secondary tap to rotate it. Widget
// coordinates are scene coordinates.
type AnchorageCanvas struct {
	widget.BaseWidget
	scene *engine.Scene

	// OnCommit is called after a drag is kept or a vessel is rotated,
	// with the poses from before the change.
	OnCommit func(label string, before []model.Pose)
	// OnChange is called after anything that may alter placement counts.
	OnChange func()

	dragBefore []model.Pose
	// gestureStarted is set by the first Dragged event of a gesture and
	// cleared by DragEnd. Only that first event may pick up a vessel.
	gestureStarted bool
}

func NewAnchorageCanvas(scene *engine.Scene) *AnchorageCanvas {
	c := &AnchorageCanvas{scene: scene}
	c.ExtendBaseWidget(c)
	return c
}

// SetScene swaps the scene being drawn, dropping any drag in progress.
func (c *AnchorageCanvas) SetScene(scene *engine.Scene) {
	c.scene = scene
	c.dragBefore = nil
	c.gestureStarted = false
	c.Refresh()
}

// Scene returns the scene being drawn.
func (c *AnchorageCanvas) Scene() *engine.Scene {
	return c.scene
}

func (c *AnchorageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newAnchorageRenderer(c)
}

// Dragged implements fyne.Draggable. Only the first event of a gesture
// picks the vessel under the point where the drag started; a gesture that
// starts on open water, or whose drag was cancelled, moves nothing.
func (c *AnchorageCanvas) Dragged(e *fyne.DragEvent) {
	if c.scene == nil || !c.scene.Loaded() {
		return
	}
	x, y := float64(e.Position.X), float64(e.Position.Y)

	if !c.gestureStarted {
		c.gestureStarted = true
		startX := x - float64(e.Dragged.DX)
		startY := y - float64(e.Dragged.DY)
		if v := c.scene.VesselAt(startX, startY); v != nil {
			c.dragBefore = c.scene.Snapshot()
			c.scene.BeginDrag(v, startX, startY)
		}
	}
	if c.scene.Dragging() == nil {
		return
	}

	c.scene.DragTo(x, y)
	c.changed()
}

// DragEnd implements fyne.Draggable and ends the gesture.
func (c *AnchorageCanvas) DragEnd() {
	c.gestureStarted = false
	if c.scene == nil {
		return
	}
	v := c.scene.Dragging()
	if v == nil {
		return
	}
	before := c.dragBefore
	c.dragBefore = nil

	if c.scene.EndDrag() && c.OnCommit != nil {
		c.OnCommit("Move "+vesselName(v), before)
	}
	c.changed()
}

// CancelDrag abandons a drag in progress, returning the vessel to where
// it was picked up. The rest of the gesture is ignored.
func (c *AnchorageCanvas) CancelDrag() {
	if c.scene == nil || c.scene.Dragging() == nil {
		return
	}
	c.dragBefore = nil
	c.scene.CancelDrag()
	c.changed()
}

// TappedSecondary implements fyne.SecondaryTappable and rotates the
// vessel under the pointer a quarter turn.
func (c *AnchorageCanvas) TappedSecondary(e *fyne.PointEvent) {
	if c.scene == nil || c.scene.Dragging() != nil {
		return
	}
	v := c.scene.VesselAt(float64(e.Position.X), float64(e.Position.Y))
	if v == nil {
		return
	}
	before := c.scene.Snapshot()
	if err := c.scene.Rotate(v); err != nil {
		return
	}
	if c.OnCommit != nil {
		c.OnCommit("Rotate "+vesselName(v), before)
	}
	c.changed()
}

func (c *AnchorageCanvas) changed() {
	c.Refresh()
	if c.OnChange != nil {
		c.OnChange()
	}
}

func vesselName(v *model.Vessel) string {
	if v.Designation == "" {
		return "vessel " + v.ID
	}
	return v.Designation
}

type anchorageRenderer struct {
	c       *AnchorageCanvas
	objects []fyne.CanvasObject
}

func newAnchorageRenderer(c *AnchorageCanvas) *anchorageRenderer {
	r := &anchorageRenderer{c: c}
	r.rebuild()
	return r
}

func (r *anchorageRenderer) rebuild() {
	r.objects = nil
	s := r.c.scene
	if s == nil || !s.Loaded() {
		msg := canvas.NewText("No scenario loaded. Use File > New Random Scenario.", color.Gray{Y: 120})
		msg.Move(fyne.NewPos(10, 10))
		r.objects = append(r.objects, msg)
		return
	}

	bounds := s.AnchorageBounds()
	water := canvas.NewRectangle(waterColor)
	water.StrokeColor = shoreColor
	water.StrokeWidth = 2
	water.Resize(fyne.NewSize(float32(bounds.Width), float32(bounds.Height)))
	water.Move(fyne.NewPos(float32(bounds.X), float32(bounds.Y)))
	r.objects = append(r.objects, water)

	palette := designationColors(s.Vessels)
	conflicts := make(map[*model.Vessel]bool)
	for _, v := range s.Conflicts() {
		conflicts[v] = true
	}
	held := s.Dragging()

	for _, v := range s.Vessels {
		box := engine.BoundingBox(v)
		pos := fyne.NewPos(float32(box.X), float32(box.Y))
		size := fyne.NewSize(float32(box.Width), float32(box.Height))

		body := canvas.NewRectangle(palette[v.Designation])
		body.StrokeColor = outlineColor
		body.StrokeWidth = 1
		switch {
		case conflicts[v]:
			body.StrokeColor = conflictColor
			body.StrokeWidth = 3
		case v == held:
			body.StrokeColor = heldColor
			body.StrokeWidth = 2
		}
		body.Resize(size)
		body.Move(pos)
		r.objects = append(r.objects, body)

		r.objects = append(r.objects, bowLine(v, box))

		if box.Width > 30 && box.Height > 16 && v.Designation != "" {
			label := canvas.NewText(v.Designation, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(pos.X+3, pos.Y+2))
			r.objects = append(r.objects, label)
		}
	}
}

// bowLine points from the vessel center to the middle of its bow edge,
// which is the top edge when unrotated.
func bowLine(v *model.Vessel, box model.Rect) *canvas.Line {
	cx, cy := box.Center()
	bx, by := cx, box.Y
	switch v.Rotation {
	case model.Rotate90:
		bx, by = box.Right(), cy
	case model.Rotate180:
		bx, by = cx, box.Bottom()
	case model.Rotate270:
		bx, by = box.X, cy
	}
	line := canvas.NewLine(outlineColor)
	line.StrokeWidth = 1
	line.Position1 = fyne.NewPos(float32(cx), float32(cy))
	line.Position2 = fyne.NewPos(float32(bx), float32(by))
	return line
}

// designationColors assigns palette entries to designations in sorted order.
func designationColors(vessels []*model.Vessel) map[string]color.Color {
	names := make(map[string]struct{})
	for _, v := range vessels {
		if v.Designation != "" {
			names[v.Designation] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	colors := map[string]color.Color{"": untrackedColor}
	for i, n := range sorted {
		colors[n] = vesselColors[i%len(vesselColors)]
	}
	return colors
}

func (r *anchorageRenderer) Layout(size fyne.Size)        {}
func (r *anchorageRenderer) Refresh()                     { r.rebuild() }
func (r *anchorageRenderer) Destroy()                     {}
func (r *anchorageRenderer) Objects() []fyne.CanvasObject { return r.objects }

// MinSize covers the anchorage and the waiting area with a margin.
func (r *anchorageRenderer) MinSize() fyne.Size {
	s := r.c.scene
	if s == nil || !s.Loaded() {
		return fyne.NewSize(400, 300)
	}
	b := s.AnchorageBounds()
	maxX, maxY := b.Right(), b.Bottom()
	for _, v := range s.Vessels {
		box := engine.BoundingBox(v)
		maxX = max(maxX, box.Right())
		maxY = max(maxY, box.Bottom())
	}
	return fyne.NewSize(float32(maxX)+20, float32(maxY)+20)
}
