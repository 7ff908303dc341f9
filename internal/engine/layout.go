package engine

import "github.com/piwi3910/anchorage/internal/model"

// Packer produces the initial placement of freshly generated vessels:
// round-robin columns to the right of the anchorage, each column as wide as
// its widest vessel, vessels stacked top to bottom.
type Packer struct {
	Config model.LayoutConfig
}

// NewPacker lays out vessels with the given spacing and scale.
func NewPacker(cfg model.LayoutConfig) *Packer {
	return &Packer{Config: cfg}
}

// GenerateLayout expands fleets into vessels and places them in columns.
// A column count below 1 falls back to the configured default.
func (p *Packer) GenerateLayout(fleets []model.Fleet, anchorageWidth float64, columns int) []*model.Vessel {
	if columns < 1 {
		columns = p.Config.Columns
	}
	if columns < 1 {
		columns = 1
	}

	vessels := p.expand(fleets)
	if len(vessels) == 0 {
		return vessels
	}

	// First pass: widest vessel per column
	columnWidths := make([]float64, columns)
	for i, v := range vessels {
		col := i % columns
		if v.Width > columnWidths[col] {
			columnWidths[col] = v.Width
		}
	}

	// Columns start right of the anchorage and are packed left to right
	columnX := make([]float64, columns)
	columnX[0] = anchorageWidth + p.Config.ColumnGap
	for col := 1; col < columns; col++ {
		columnX[col] = columnX[col-1] + columnWidths[col-1] + p.Config.ColumnSpacing
	}

	// Second pass: stack vessels in their column
	columnY := make([]float64, columns)
	for col := range columnY {
		columnY[col] = p.Config.OriginY
	}
	for i, v := range vessels {
		col := i % columns
		v.MoveTo(columnX[col], columnY[col])
		v.Remember()
		columnY[col] += v.Height + p.Config.VesselSpacing
	}

	return vessels
}

// expand turns each fleet into Count vessels, scaled once to screen units.
func (p *Packer) expand(fleets []model.Fleet) []*model.Vessel {
	vessels := []*model.Vessel{}
	for _, f := range fleets {
		w := float64(f.Dimensions.Width) * p.Config.ScaleFactor
		h := float64(f.Dimensions.Height) * p.Config.ScaleFactor
		for i := 0; i < f.Count; i++ {
			vessels = append(vessels, model.NewVessel(f.Designation, w, h))
		}
	}
	return vessels
}
