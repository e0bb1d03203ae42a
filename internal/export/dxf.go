package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/mverdi/wallplan/internal/model"
)

// Vertical gap between category elevations in the DXF output, in mm.
const dxfRowGap = 200.0

// ExportDXF writes the wall assembly as a DXF drawing for CAD import.
// Each block category is drawn as an elevation in real-world millimeters,
// stacked vertically: block outline on BLOCKS, stud outlines on STUDS, and
// stud center lines on AXES. Coordinates match the shop convention, with
// stud offsets measured from the block's right edge.
func ExportDXF(path string, cfg *model.WallAssemblyConfig) error {
	if cfg == nil {
		return fmt.Errorf("no configuration to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("BLOCKS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add BLOCKS layer: %w", err)
	}
	if _, err := d.AddLayer("STUDS", color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add STUDS layer: %w", err)
	}
	if _, err := d.AddLayer("AXES", color.Yellow, table.LT_HIDDEN, false); err != nil {
		return fmt.Errorf("failed to add AXES layer: %w", err)
	}

	baseY := 0.0
	for _, id := range model.CategoryIDs {
		if err := drawCategory(d, cfg, id, baseY); err != nil {
			return err
		}
		placement := cfg.Placement(id)
		height := cfg.Height(id)
		baseY -= placement.Category.HeightMm + height.FootingMm + dxfRowGap
	}

	return d.SaveAs(path)
}

// drawCategory draws one category elevation with its bottom-left block
// corner at (0, baseY).
func drawCategory(d *drawing.Drawing, cfg *model.WallAssemblyConfig, id model.CategoryID, baseY float64) error {
	placement := cfg.Placement(id)
	height := cfg.Height(id)
	block := placement.Category

	if err := d.ChangeLayer("BLOCKS"); err != nil {
		return err
	}
	if err := drawRect(d, 0, baseY, block.WidthMm, block.HeightMm); err != nil {
		return err
	}

	if err := d.ChangeLayer("STUDS"); err != nil {
		return err
	}
	// A stud's top sits the interlock clearance below the block top and its
	// footing extends below the block bottom.
	studTop := baseY + block.HeightMm - height.InterlockClearanceMm
	studBottom := studTop - cfg.Stud.TotalHeightMm
	half := cfg.Stud.ThicknessMm / 2

	for _, pos := range placement.PositionsMm {
		center := block.WidthMm - pos
		if err := drawRect(d, center-half, studBottom, cfg.Stud.ThicknessMm, cfg.Stud.TotalHeightMm); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer("AXES"); err != nil {
		return err
	}
	// Center lines overshoot the stud by a margin on both ends.
	const overshoot = 50.0
	for _, pos := range placement.PositionsMm {
		center := block.WidthMm - pos
		if _, err := d.Line(center, studBottom-overshoot, 0, center, studTop+overshoot, 0); err != nil {
			return err
		}
	}

	return nil
}

// drawRect draws an axis-aligned rectangle from its bottom-left corner.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [4][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
