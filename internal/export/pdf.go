package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

// vesselColor represents an RGB color for a vessel type.
type vesselColor struct {
	R, G, B int
}

// vesselColors mirrors the color scheme used in the UI anchorage canvas.
var vesselColors = []vesselColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

var untrackedColor = vesselColor{R: 158, G: 158, B: 158}

func colorFor(idx int) vesselColor {
	if idx < 0 {
		return untrackedColor
	}
	return vesselColors[idx%len(vesselColors)]
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes the plan as a two-page PDF: the anchorage drawing with
// every vessel, then a placement summary per designation.
func ExportPDF(path string, plan Plan) error {
	if plan.Empty() {
		return ErrEmptyPlan
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, plan)

	pdf.AddPage()
	renderSummaryPage(pdf, plan)

	return pdf.OutputFileAndClose(path)
}

// renderPlanPage draws the anchorage and all vessels scaled to fit the page.
func renderPlanPage(pdf *fpdf.Fpdf, plan Plan) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Anchorage %.0f x %.0f", plan.units(plan.Anchorage.Width), plan.units(plan.Anchorage.Height))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Vessels: %d | In anchorage: %d | Waiting: %d",
		len(plan.Vessels), plan.PlacedCount(), len(plan.Vessels)-plan.PlacedCount())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	extent := plan.Extent()
	scale := math.Min(drawWidth/extent.Width, drawHeight/extent.Height)

	offsetX := marginLeft + (drawWidth-extent.Width*scale)/2
	offsetY := drawAreaTop
	toPage := func(x, y float64) (float64, float64) {
		return offsetX + (x-extent.X)*scale, offsetY + (y-extent.Y)*scale
	}

	// Water
	ax, ay := toPage(plan.Anchorage.X, plan.Anchorage.Y)
	aw, ah := plan.Anchorage.Width*scale, plan.Anchorage.Height*scale
	pdf.SetFillColor(187, 222, 251)
	pdf.SetDrawColor(13, 71, 161)
	pdf.SetLineWidth(0.5)
	pdf.Rect(ax, ay, aw, ah, "FD")

	idx := plan.designationIndex()
	for _, vs := range plan.Vessels {
		col := colorFor(idx[vs.Vessel.Designation])
		px, py := toPage(vs.Box.X, vs.Box.Y)
		pw, ph := vs.Box.Width*scale, vs.Box.Height*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		style := "FD"
		if !vs.Placed {
			// Waiting vessels are drawn as outlines only
			style = "D"
			pdf.SetDrawColor(col.R, col.G, col.B)
		}
		pdf.Rect(px, py, pw, ph, style)

		if pw > 15 && ph > 8 && vs.Vessel.Designation != "" {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			label := vs.Vessel.Designation
			if w := pdf.GetStringWidth(label); w < pw-2 {
				pdf.SetXY(px+(pw-w)/2, py+ph/2-2)
				pdf.CellFormat(w, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, plan, ax, ay, aw, ah)
	drawLegend(pdf, plan, offsetY+extent.Height*scale+6)
}

// drawDimensionAnnotations labels the anchorage width and height in ship units.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, plan Plan, x, y, w, h float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f", plan.units(plan.Anchorage.Width))
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(x+(w-wLabelW)/2, y+h+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f", plan.units(plan.Anchorage.Height))
	pdf.TransformBegin()
	pdf.TransformRotate(90, x-3, y+h/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(x-3-hLabelW/2, y+h/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders one swatch per designation with its placement count.
func drawLegend(pdf *fpdf.Fpdf, plan Plan, startY float64) {
	if len(plan.Tracking) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Vessel types:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight
	idx := plan.designationIndex()

	for _, e := range plan.Tracking {
		col := colorFor(idx[e.Designation])
		label := fmt.Sprintf("%s (%d/%d)", e.Designation, e.Placed, e.Total)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the placement table.
func renderSummaryPage(pdf *fpdf.Fpdf, plan Plan) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Placement Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	complete := len(plan.Tracking) > 0
	for _, e := range plan.Tracking {
		if !e.Complete() {
			complete = false
		}
	}
	status := "In progress"
	if complete {
		status = "Complete"
	}

	summaryItems := []struct {
		label string
		value string
	}{
		{"Anchorage", fmt.Sprintf("%.0f x %.0f", plan.units(plan.Anchorage.Width), plan.units(plan.Anchorage.Height))},
		{"Vessels", fmt.Sprintf("%d", len(plan.Vessels))},
		{"In Anchorage", fmt.Sprintf("%d", plan.PlacedCount())},
		{"Status", status},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Vessel Types", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{90, 40, 40, 40}
	headers := []string{"Designation", "Placed", "Required", "Done"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, e := range plan.Tracking {
		done := "no"
		if e.Complete() {
			done = "yes"
		}
		rowData := []string{
			e.Designation,
			fmt.Sprintf("%d", e.Placed),
			fmt.Sprintf("%d", e.Total),
			done,
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Anchorage Planner", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
