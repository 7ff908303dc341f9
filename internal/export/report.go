package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by ExportReport.
const (
	SheetTracking = "Tracking"
	SheetVessels  = "Vessels"
)

// ExportReport writes an Excel workbook with one row per designation on
// the Tracking sheet and one row per vessel on the Vessels sheet.
func ExportReport(path string, plan Plan) error {
	if plan.Empty() {
		return ErrEmptyPlan
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetTracking); err != nil {
		return fmt.Errorf("failed to name tracking sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetVessels); err != nil {
		return fmt.Errorf("failed to create vessel sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	tracking := [][]interface{}{{"Designation", "Placed", "Required", "Complete"}}
	for _, e := range plan.Tracking {
		tracking = append(tracking, []interface{}{e.Designation, e.Placed, e.Total, e.Complete()})
	}
	if err := writeRows(f, SheetTracking, tracking, headerStyle); err != nil {
		return err
	}

	vessels := [][]interface{}{{"ID", "Designation", "Width", "Height", "Rotation", "X", "Y", "In Anchorage"}}
	for _, l := range CollectLabelInfos(plan) {
		vessels = append(vessels, []interface{}{l.ID, l.Designation, l.Width, l.Height, l.Rotation, l.X, l.Y, l.Placed})
	}
	if err := writeRows(f, SheetVessels, vessels, headerStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetTracking, "A", "A", 32); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(SheetVessels, "B", "B", 32); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeRows writes rows starting at A1 and styles the first one as a header.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}
