package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerAnchorage = "ANCHORAGE"
	LayerVessels   = "VESSELS"
)

// ExportDXF writes the plan as a DXF drawing in ship units with the Y axis
// pointing up. The anchorage's bottom-left corner is the drawing origin.
// Each vessel is a closed rectangle of its rotated footprint with its
// designation as text inside.
func ExportDXF(path string, plan Plan) error {
	if plan.Empty() {
		return ErrEmptyPlan
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(LayerAnchorage, color.Blue, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add anchorage layer: %w", err)
	}
	w := plan.units(plan.Anchorage.Width)
	h := plan.units(plan.Anchorage.Height)
	if err := drawRect(d, 0, 0, w, h); err != nil {
		return fmt.Errorf("failed to draw anchorage: %w", err)
	}

	if _, err := d.AddLayer(LayerVessels, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add vessel layer: %w", err)
	}
	for _, vs := range plan.Vessels {
		x := plan.units(vs.Box.X - plan.Anchorage.X)
		bw := plan.units(vs.Box.Width)
		bh := plan.units(vs.Box.Height)
		// Screen Y grows downward, drawing Y grows upward
		y := h - plan.units(vs.Box.Y-plan.Anchorage.Y) - bh

		if err := drawRect(d, x, y, bw, bh); err != nil {
			return fmt.Errorf("failed to draw vessel %s: %w", vs.Vessel.ID, err)
		}
		if vs.Vessel.Designation == "" {
			continue
		}
		textHeight := min(bw, bh) / 4
		if _, err := d.Text(vs.Vessel.Designation, x+textHeight/2, y+bh/2-textHeight/2, 0, textHeight); err != nil {
			return fmt.Errorf("failed to label vessel %s: %w", vs.Vessel.ID, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return err
		}
	}
	return nil
}
