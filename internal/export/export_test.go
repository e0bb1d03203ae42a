package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"

	"github.com/mverdi/wallplan/internal/model"
)

// buildTestConfig creates a realistic wall assembly configuration.
func buildTestConfig(t *testing.T) *model.WallAssemblyConfig {
	t.Helper()
	cfg, err := model.BuildConfig(model.BlockSystems[0].Input())
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	return cfg
}

// buildNarrowConfig produces a configuration where the small block cannot
// fit all requested studs.
func buildNarrowConfig(t *testing.T) *model.WallAssemblyConfig {
	t.Helper()
	in := model.BlockSystems[0].Input()
	in.Counts = model.CategoryCounts{Large: 3, Medium: 3, Small: 3}
	cfg, err := model.BuildConfig(in)
	if err != nil {
		t.Fatalf("BuildConfig: %v", err)
	}
	return cfg
}

func assertFileNotEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

// ─── PDF ───────────────────────────────────────────────────

func TestExportPDF(t *testing.T) {
	cfg := buildTestConfig(t)
	path := filepath.Join(t.TempDir(), "assembly.pdf")

	if err := ExportPDF(path, cfg, "Test Wall"); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	assertFileNotEmpty(t, path)
}

func TestExportPDFWithWarnings(t *testing.T) {
	cfg := buildNarrowConfig(t)
	if len(cfg.Warnings()) == 0 {
		t.Fatal("test config should produce narrow block warnings")
	}
	path := filepath.Join(t.TempDir(), "narrow.pdf")

	if err := ExportPDF(path, cfg, ""); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	assertFileNotEmpty(t, path)
}

func TestExportPDFNilConfig(t *testing.T) {
	if err := ExportPDF(filepath.Join(t.TempDir(), "nil.pdf"), nil, ""); err == nil {
		t.Error("expected error for nil configuration")
	}
}

// ─── Labels ────────────────────────────────────────────────

func TestCollectLabelInfos(t *testing.T) {
	cfg := buildTestConfig(t)

	labels := CollectLabelInfos(cfg)

	// Default system places 3 + 2 + 1 studs.
	if len(labels) != 6 {
		t.Fatalf("expected 6 labels, got %d", len(labels))
	}
	first := labels[0]
	if first.Category != "Large" || first.StudIndex != 1 || first.OffsetMm != 0 {
		t.Errorf("unexpected first label: %+v", first)
	}
	last := labels[len(labels)-1]
	if last.Category != "Small" {
		t.Errorf("expected last label for Small, got %q", last.Category)
	}
	for _, l := range labels {
		if l.ThicknessMm != 58 || l.HeightMm != 495 {
			t.Errorf("label carries wrong stud dimensions: %+v", l)
		}
	}
}

func TestExportLabels(t *testing.T) {
	cfg := buildTestConfig(t)
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, cfg); err != nil {
		t.Fatalf("ExportLabels: %v", err)
	}
	assertFileNotEmpty(t, path)
}

func TestExportLabelsNilConfig(t *testing.T) {
	if err := ExportLabels(filepath.Join(t.TempDir(), "nil.pdf"), nil); err == nil {
		t.Error("expected error for nil configuration")
	}
}

// ─── XLSX ──────────────────────────────────────────────────

func TestExportXLSX(t *testing.T) {
	cfg := buildTestConfig(t)
	est := model.EstimateTimber(cfg, model.CategoryCounts{Large: 4, Medium: 4, Small: 4}, 4000, 10, 12.5)
	path := filepath.Join(t.TempDir(), "assembly.xlsx")

	if err := ExportXLSX(path, cfg, &est); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Assembly": true, "Cut List": true, "Purchase": true}
	for _, s := range sheets {
		delete(want, s)
	}
	if len(want) > 0 {
		t.Errorf("missing sheets: %v (got %v)", want, sheets)
	}

	// Spacing row on the assembly sheet
	val, err := f.GetCellValue("Assembly", "B4")
	if err != nil {
		t.Fatal(err)
	}
	if val != "413" {
		t.Errorf("expected spacing 413 in Assembly!B4, got %q", val)
	}

	// Cut list has a header plus one row per placed stud
	rows, err := f.GetRows("Cut List")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+cfg.StudsPerCourse() {
		t.Errorf("expected %d cut list rows, got %d", 1+cfg.StudsPerCourse(), len(rows))
	}
}

func TestExportXLSXWithoutEstimate(t *testing.T) {
	cfg := buildTestConfig(t)
	path := filepath.Join(t.TempDir(), "plain.xlsx")

	if err := ExportXLSX(path, cfg, nil); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	for _, s := range f.GetSheetList() {
		if s == "Purchase" {
			t.Error("purchase sheet should be absent without an estimate")
		}
	}
}

// ─── DXF ───────────────────────────────────────────────────

func TestExportDXF(t *testing.T) {
	cfg := buildTestConfig(t)
	path := filepath.Join(t.TempDir(), "assembly.dxf")

	if err := ExportDXF(path, cfg); err != nil {
		t.Fatalf("ExportDXF: %v", err)
	}
	assertFileNotEmpty(t, path)

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("reopen drawing: %v", err)
	}

	// 3 block rectangles and 6 stud rectangles at 4 lines each, plus one
	// axis line per stud.
	wantLines := (3+6)*4 + 6
	if got := len(drawing.Entities()); got != wantLines {
		t.Errorf("expected %d entities, got %d", wantLines, got)
	}
}

func TestExportDXFNilConfig(t *testing.T) {
	if err := ExportDXF(filepath.Join(t.TempDir(), "nil.dxf"), nil); err == nil {
		t.Error("expected error for nil configuration")
	}
}
