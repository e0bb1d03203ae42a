// Package catalog provides CSV, Excel, and TOML import functionality for
// block-system catalogs. It supports automatic delimiter detection, flexible
// column mapping, and case-insensitive header recognition.
package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xuri/excelize/v2"

	"github.com/mverdi/wallplan/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Systems  []model.BlockSystem
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name        int
	LargeWidth  int
	MediumWidth int
	SmallWidth  int
	BlockHeight int
	Thickness   int
	StudHeight  int
	Clearance   int
	Spacing     int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":        {"name", "system", "system name", "series", "label", "description"},
	"large":       {"large", "large width", "large_width", "l", "block a", "wide"},
	"medium":      {"medium", "medium width", "medium_width", "m", "block b", "mid"},
	"small":       {"small", "small width", "small_width", "s", "block c", "narrow"},
	"blockheight": {"height", "block height", "block_height", "course height", "course_height"},
	"thickness":   {"thickness", "stud thickness", "stud_thickness", "moraletto", "t"},
	"studheight":  {"stud height", "stud_height", "total height", "total_height"},
	"clearance":   {"clearance", "ground clearance", "ground_clearance", "from ground", "from_ground"},
	"spacing":     {"spacing", "step", "pitch", "interval"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:        -1,
		LargeWidth:  -1,
		MediumWidth: -1,
		SmallWidth:  -1,
		BlockHeight: -1,
		Thickness:   -1,
		StudHeight:  -1,
		Clearance:   -1,
		Spacing:     -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "large":
						if mapping.LargeWidth == -1 {
							mapping.LargeWidth = i
						}
					case "medium":
						if mapping.MediumWidth == -1 {
							mapping.MediumWidth = i
						}
					case "small":
						if mapping.SmallWidth == -1 {
							mapping.SmallWidth = i
						}
					case "blockheight":
						if mapping.BlockHeight == -1 {
							mapping.BlockHeight = i
						}
					case "thickness":
						if mapping.Thickness == -1 {
							mapping.Thickness = i
						}
					case "studheight":
						if mapping.StudHeight == -1 {
							mapping.StudHeight = i
						}
					case "clearance":
						if mapping.Clearance == -1 {
							mapping.Clearance = i
						}
					case "spacing":
						if mapping.Spacing == -1 {
							mapping.Spacing = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// Name, Large, Medium, Small, BlockHeight, Thickness, StudHeight, Clearance, Spacing
		return ColumnMapping{
			Name:        0,
			LargeWidth:  1,
			MediumWidth: 2,
			SmallWidth:  3,
			BlockHeight: 4,
			Thickness:   5,
			StudHeight:  6,
			Clearance:   7,
			Spacing:     8,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a BlockSystem from a row using the given column mapping.
// Returns the system, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, systemCount int) (model.BlockSystem, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("System %d", systemCount+1)
	}

	widths := [3]float64{}
	widthCols := [3]struct {
		idx   int
		label string
	}{
		{mapping.LargeWidth, "large width"},
		{mapping.MediumWidth, "medium width"},
		{mapping.SmallWidth, "small width"},
	}
	for i, col := range widthCols {
		str := getCell(row, col.idx)
		if str == "" {
			return model.BlockSystem{}, fmt.Sprintf("%s: Missing %s value", rowLabel, col.label), ""
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return model.BlockSystem{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, col.label, str), ""
		}
		widths[i] = v
	}

	heightStr := getCell(row, mapping.BlockHeight)
	if heightStr == "" {
		return model.BlockSystem{}, fmt.Sprintf("%s: Missing block height value", rowLabel), ""
	}
	blockHeight, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.BlockSystem{}, fmt.Sprintf("%s: Invalid block height '%s'", rowLabel, heightStr), ""
	}

	system := model.BlockSystem{
		Name:   name,
		Blocks: blockTriple(widths, blockHeight),
		Stud:   model.BlockSystems[0].Stud,
		Counts: model.BlockSystems[0].Counts,
	}

	var warnings []string

	// Optional stud columns fall back to the default system's stud spec.
	parseOptional := func(idx int, label string, dst *float64) {
		str := getCell(row, idx)
		if str == "" {
			return
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid %s '%s', using default", rowLabel, label, str))
			return
		}
		*dst = v
	}
	parseOptional(mapping.Thickness, "stud thickness", &system.Stud.ThicknessMm)
	parseOptional(mapping.StudHeight, "stud height", &system.Stud.TotalHeightMm)
	parseOptional(mapping.Clearance, "ground clearance", &system.Stud.GroundClearanceMm)
	parseOptional(mapping.Spacing, "spacing", &system.SpacingMm)

	// A row must describe three distinct, positive widths to be usable.
	if _, err := model.ClassifyBlocks(system.Blocks); err != nil {
		return model.BlockSystem{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}

	return system, "", strings.Join(warnings, "; ")
}

// blockTriple builds the block dimension triple for a row. All three blocks
// in a system share the course height.
func blockTriple(widths [3]float64, heightMm float64) [3]model.BlockDimensions {
	return [3]model.BlockDimensions{
		{WidthMm: widths[0], HeightMm: heightMm},
		{WidthMm: widths[1], HeightMm: heightMm},
		{WidthMm: widths[2], HeightMm: heightMm},
	}
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports block systems from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports block systems from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports block systems from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// tomlCatalog is the envelope for a TOML catalog file: one or more
// [[system]] tables.
type tomlCatalog struct {
	Systems []model.BlockSystem `toml:"system"`
}

// ImportTOML imports block systems from a TOML catalog file. Each system
// is a [[system]] table; single-system files exported for sharing carry a
// plain [system] table instead and are accepted as well.
func ImportTOML(path string) ImportResult {
	result := ImportResult{}

	systems, err := decodeTOMLSystems(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse TOML: %v", err))
		return result
	}
	if len(systems) == 0 {
		result.Errors = append(result.Errors, "No [[system]] tables found")
		return result
	}

	for i, sys := range systems {
		label := fmt.Sprintf("System %d", i+1)
		if sys.Name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing name", label))
			continue
		}
		if sys.Stud == (model.StudSpec{}) {
			sys.Stud = model.BlockSystems[0].Stud
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s (%s): No stud spec, using defaults", label, sys.Name))
		}
		if sys.Counts == (model.CategoryCounts{}) {
			sys.Counts = model.BlockSystems[0].Counts
		}
		if _, err := model.ClassifyBlocks(sys.Blocks); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s (%s): %v", label, sys.Name, err))
			continue
		}
		sys.IsBuiltIn = false
		result.Systems = append(result.Systems, sys)
	}

	return result
}

// decodeTOMLSystems reads the systems from a TOML file, trying the
// catalog envelope ([[system]] tables) first and falling back to the
// single [system] table written by the systems export command.
func decodeTOMLSystems(path string) ([]model.BlockSystem, error) {
	var cat tomlCatalog
	_, catErr := toml.DecodeFile(path, &cat)
	if catErr == nil {
		return cat.Systems, nil
	}

	var shared struct {
		System model.BlockSystem `toml:"system"`
	}
	if _, err := toml.DecodeFile(path, &shared); err == nil {
		return []model.BlockSystem{shared.System}, nil
	}
	// Neither shape decoded; the catalog error names the real problem.
	return nil, catErr
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into block systems.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.LargeWidth == -1 {
			missing = append(missing, "Large width")
		}
		if mapping.MediumWidth == -1 {
			missing = append(missing, "Medium width")
		}
		if mapping.SmallWidth == -1 {
			missing = append(missing, "Small width")
		}
		if mapping.BlockHeight == -1 {
			missing = append(missing, "Block height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if the first data column is numeric. If it is not,
		// the first row is likely an unrecognized header - skip it but keep
		// positional mapping.
		if len(rows[0]) >= 4 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		system, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Systems))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Systems = append(result.Systems, system)
	}

	return result
}
