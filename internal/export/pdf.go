// Package export renders wall assembly configurations to shop-floor file
// formats: PDF elevation drawings, QR-coded stud labels, XLSX cut lists,
// and DXF drawings for CAD import.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/mverdi/wallplan/internal/model"
)

// studColor represents an RGB color for a rendered stud.
type studColor struct {
	R, G, B int
}

// studColors distinguishes adjacent studs in the elevation drawing.
var studColors = []studColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
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

// ExportPDF generates a PDF document for a wall assembly configuration.
// Each block category is rendered on its own page as an elevation drawing
// with stud positions, followed by a summary page.
func ExportPDF(path string, cfg *model.WallAssemblyConfig, projectName string) error {
	if cfg == nil {
		return fmt.Errorf("no configuration to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for _, id := range model.CategoryIDs {
		pdf.AddPage()
		renderCategoryPage(pdf, cfg, id, projectName)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, cfg, projectName)

	return pdf.OutputFileAndClose(path)
}

// renderCategoryPage draws one block category's elevation on the current page.
func renderCategoryPage(pdf *fpdf.Fpdf, cfg *model.WallAssemblyConfig, id model.CategoryID, projectName string) {
	placement := cfg.Placement(id)
	height := cfg.Height(id)
	block := placement.Category

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s block: %.0f x %.0f mm", id, block.WidthMm, block.HeightMm)
	if projectName != "" {
		title = projectName + " - " + title
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Studs: %d of %d | Spacing: %.0f mm | Stud: %.0f x %.0f mm | Footing: %.0f mm",
		len(placement.PositionsMm), placement.RequestedCount, cfg.SpacingMm,
		cfg.Stud.ThicknessMm, cfg.Stud.TotalHeightMm, height.FootingMm)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Drawing area. The footing band below the block is part of the scene.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	sceneHeight := block.HeightMm + height.FootingMm

	scaleX := drawWidth / block.WidthMm
	scaleY := drawHeight / sceneHeight
	scale := math.Min(scaleX, scaleY)

	canvasW := block.WidthMm * scale
	blockH := block.HeightMm * scale
	footingH := height.FootingMm * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Block face
	pdf.SetFillColor(235, 225, 205)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, blockH, "FD")

	// Footing band below the block, hatched
	pdf.SetFillColor(255, 220, 200)
	pdf.SetDrawColor(160, 80, 0)
	pdf.SetLineWidth(0.3)
	pdf.Rect(offsetX, offsetY+blockH, canvasW, footingH, "FD")
	drawHatchPattern(pdf, offsetX, offsetY+blockH, canvasW, footingH)

	// Studs. Positions are offsets from the trailing (right) edge; a stud
	// reaches from the interlock clearance line down through the footing.
	studW := cfg.Stud.ThicknessMm * scale
	studTop := offsetY + height.InterlockClearanceMm*scale
	studH := cfg.Stud.TotalHeightMm * scale

	for i, pos := range placement.PositionsMm {
		col := studColors[i%len(studColors)]
		centerX := offsetX + (block.WidthMm-pos)*scale
		sx := centerX - studW/2

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(sx, studTop, studW, studH, "FD")

		if studW > 6 {
			pdf.SetFont("Helvetica", "B", 7)
			pdf.SetTextColor(0, 0, 0)
			label := fmt.Sprintf("%d", i+1)
			labelW := pdf.GetStringWidth(label)
			pdf.SetXY(centerX-labelW/2, studTop+2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}

		// Offset annotation below the footing band
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(80, 80, 80)
		posLabel := fmt.Sprintf("%.0f", pos)
		posW := pdf.GetStringWidth(posLabel)
		pdf.SetXY(centerX-posW/2, offsetY+blockH+footingH+1)
		pdf.CellFormat(posW, 3.5, posLabel, "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	drawDimensionAnnotations(pdf, block, scale, offsetX, offsetY, canvasW, blockH)

	// Shortfall warning under the drawing
	if shortfall := placement.Shortfall(); shortfall > 0 {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, offsetY+blockH+footingH+8)
		warning := fmt.Sprintf("Block too narrow: %d of %d studs placed", len(placement.PositionsMm), placement.RequestedCount)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, warning, "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark the
// footing band.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(160, 80, 0)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the block rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, block model.BlockCategory, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (above the block, clear of the offset labels below)
	widthLabel := fmt.Sprintf("%.0f mm", block.WidthMm)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY-5)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the block, rotated)
	heightLabel := fmt.Sprintf("%.0f mm", block.HeightMm)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the final summary page.
func renderSummaryPage(pdf *fpdf.Fpdf, cfg *model.WallAssemblyConfig, projectName string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	title := "Wall Assembly Summary"
	if projectName != "" {
		title = projectName + " - " + title
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Stud Specification", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Thickness", fmt.Sprintf("%.0f mm", cfg.Stud.ThicknessMm)},
		{"Total Height", fmt.Sprintf("%.0f mm", cfg.Stud.TotalHeightMm)},
		{"Ground Clearance", fmt.Sprintf("%.0f mm", cfg.Stud.GroundClearanceMm)},
		{"Spacing", fmt.Sprintf("%.0f mm", cfg.SpacingMm)},
		{"Studs per Course", fmt.Sprintf("%d", cfg.StudsPerCourse())},
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
	pdf.CellFormat(100, 7, "Category Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{30, 40, 30, 60, 50, 55}
	headers := []string{"Category", "Block (mm)", "Studs", "Offsets (mm)", "Embedded (mm)", "Clearance (mm)"}

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
	for i, id := range model.CategoryIDs {
		placement := cfg.Placement(id)
		height := cfg.Height(id)
		xPos = marginLeft

		rowData := []string{
			id.String(),
			fmt.Sprintf("%.0f x %.0f", placement.Category.WidthMm, placement.Category.HeightMm),
			fmt.Sprintf("%d / %d", len(placement.PositionsMm), placement.RequestedCount),
			formatOffsets(placement.PositionsMm),
			fmt.Sprintf("%.0f", height.EmbeddedMm),
			fmt.Sprintf("%.0f", height.InterlockClearanceMm),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Narrow block warnings
	warnings := cfg.Warnings()
	if len(warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Narrow Blocks", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+w.String(), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by wallplan - Wall Assembly Planner", "", 0, "C", false, 0, "")
}

// formatOffsets renders a position list as a compact comma-separated string.
func formatOffsets(positions []float64) string {
	if len(positions) == 0 {
		return "-"
	}
	s := ""
	for i, p := range positions {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.0f", p)
	}
	return s
}
