package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/mverdi/wallplan/internal/model"
)

// LabelInfo holds the data encoded into each stud label's QR code.
type LabelInfo struct {
	Category    string  `json:"category"`
	StudIndex   int     `json:"stud"`
	OffsetMm    float64 `json:"offset_mm"`
	ThicknessMm float64 `json:"thickness_mm"`
	HeightMm    float64 `json:"height_mm"`
	FootingMm   float64 `json:"footing_mm"`
	BlockW      float64 `json:"block_width_mm"`
	BlockH      float64 `json:"block_height_mm"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per placed stud.
// Each label names the block category, stud index, and trailing-edge offset,
// with the full placement metadata encoded as JSON in the QR code. Labels
// are laid out on a standard label sheet (Avery 5160 / 3x10 on US Letter).
func ExportLabels(path string, cfg *model.WallAssemblyConfig) error {
	if cfg == nil {
		return fmt.Errorf("no configuration to generate labels for")
	}

	labels := CollectLabelInfos(cfg)
	if len(labels) == 0 {
		return fmt.Errorf("no studs placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %s stud %d: %w", label.Category, label.StudIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single stud label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.Category, info.StudIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Category and stud index
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("%s stud %d", info.Category, info.StudIndex), "", 1, "L", false, 0, "")

	// Stud dimensions
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f mm", info.ThicknessMm, info.HeightMm)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	// Offset from trailing edge
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Offset %.0f mm from edge", info.OffsetMm), "", 1, "L", false, 0, "")

	// Footing depth
	pdf.SetXY(textX, y+labelPadding+12.5)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Footing %.0f mm", info.FootingMm), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)

	return nil
}

// CollectLabelInfos extracts label information from a wall assembly
// configuration for use in testing or alternative export formats.
func CollectLabelInfos(cfg *model.WallAssemblyConfig) []LabelInfo {
	var labels []LabelInfo
	for _, id := range model.CategoryIDs {
		placement := cfg.Placement(id)
		height := cfg.Height(id)
		for i, pos := range placement.PositionsMm {
			labels = append(labels, LabelInfo{
				Category:    id.String(),
				StudIndex:   i + 1,
				OffsetMm:    pos,
				ThicknessMm: cfg.Stud.ThicknessMm,
				HeightMm:    cfg.Stud.TotalHeightMm,
				FootingMm:   height.FootingMm,
				BlockW:      placement.Category.WidthMm,
				BlockH:      placement.Category.HeightMm,
			})
		}
	}
	return labels
}
