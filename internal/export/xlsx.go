package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mverdi/wallplan/internal/model"
)

// ExportXLSX writes a wall assembly configuration to an Excel workbook with
// an assembly overview sheet and a per-stud cut list. When estimate is
// non-nil a purchase sheet is appended.
func ExportXLSX(path string, cfg *model.WallAssemblyConfig, estimate *model.TimberEstimate) error {
	if cfg == nil {
		return fmt.Errorf("no configuration to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), "Assembly")
	if err := writeAssemblySheet(f, cfg); err != nil {
		return err
	}

	if _, err := f.NewSheet("Cut List"); err != nil {
		return err
	}
	if err := writeCutListSheet(f, cfg); err != nil {
		return err
	}

	if estimate != nil {
		if _, err := f.NewSheet("Purchase"); err != nil {
			return err
		}
		writePurchaseSheet(f, estimate)
	}

	return f.SaveAs(path)
}

func writeAssemblySheet(f *excelize.File, cfg *model.WallAssemblyConfig) error {
	const sheet = "Assembly"

	rows := [][]interface{}{
		{"Stud thickness (mm)", cfg.Stud.ThicknessMm},
		{"Stud height (mm)", cfg.Stud.TotalHeightMm},
		{"Ground clearance (mm)", cfg.Stud.GroundClearanceMm},
		{"Spacing (mm)", cfg.SpacingMm},
		{"Studs per course", cfg.StudsPerCourse()},
		{},
		{"Category", "Block width (mm)", "Block height (mm)", "Requested", "Placed", "Offsets (mm)", "Embedded (mm)", "Clearance (mm)"},
	}

	for _, id := range model.CategoryIDs {
		p := cfg.Placement(id)
		h := cfg.Height(id)
		rows = append(rows, []interface{}{
			id.String(),
			p.Category.WidthMm,
			p.Category.HeightMm,
			p.RequestedCount,
			len(p.PositionsMm),
			formatOffsets(p.PositionsMm),
			h.EmbeddedMm,
			h.InterlockClearanceMm,
		})
	}

	for _, w := range cfg.Warnings() {
		rows = append(rows, []interface{}{"WARNING", w.String()})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "H", 20)
}

func writeCutListSheet(f *excelize.File, cfg *model.WallAssemblyConfig) error {
	const sheet = "Cut List"

	header := []interface{}{"Category", "Stud", "Offset (mm)", "Thickness (mm)", "Length (mm)", "Footing (mm)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	rowNum := 2
	for _, id := range model.CategoryIDs {
		p := cfg.Placement(id)
		h := cfg.Height(id)
		for i, pos := range p.PositionsMm {
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			row := []interface{}{
				id.String(),
				i + 1,
				pos,
				cfg.Stud.ThicknessMm,
				cfg.Stud.TotalHeightMm,
				h.FootingMm,
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
			rowNum++
		}
	}

	return f.SetColWidth(sheet, "A", "F", 16)
}

func writePurchaseSheet(f *excelize.File, est *model.TimberEstimate) {
	const sheet = "Purchase"

	rows := [][]interface{}{
		{"Studs needed", est.TotalStuds},
		{"Stud length (mm)", est.StudLengthMm},
		{"Bar length (mm)", est.BarLengthMm},
		{"Studs per bar", est.StudsPerBar},
		{"Offcut per bar (mm)", est.OffcutPerBarMm},
		{"Bars (minimum)", est.BarsNeededMin},
		{"Bars (with waste)", est.BarsWithWaste},
		{"Estimated cost", est.EstimatedCost},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 20)
}
