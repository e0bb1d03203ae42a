package project

import (
	"path/filepath"
	"testing"

	"github.com/mverdi/wallplan/internal/model"
)

func testSystem(name string) model.BlockSystem {
	return model.BlockSystem{
		Name:        name,
		Description: "test system",
		Blocks: [3]model.BlockDimensions{
			{WidthMm: 1200, HeightMm: 400},
			{WidthMm: 800, HeightMm: 400},
			{WidthMm: 400, HeightMm: 400},
		},
		Stud:   model.StudSpec{ThicknessMm: 50, TotalHeightMm: 400, GroundClearanceMm: 80},
		Counts: model.CategoryCounts{Large: 3, Medium: 2, Small: 1},
	}
}

func TestLoadCustomSystemsMissingFile(t *testing.T) {
	systems, err := LoadCustomSystems(filepath.Join(t.TempDir(), "systems.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(systems) != 0 {
		t.Errorf("expected empty slice, got %v", systems)
	}
}

func TestSaveAndLoadCustomSystems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "systems.json")

	in := []model.BlockSystem{testSystem("Custom A"), testSystem("Custom B")}
	if err := SaveCustomSystems(path, in); err != nil {
		t.Fatalf("SaveCustomSystems: %v", err)
	}

	out, err := LoadCustomSystems(path)
	if err != nil {
		t.Fatalf("LoadCustomSystems: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 systems, got %d", len(out))
	}
	if out[0].Name != "Custom A" || out[0].Blocks[0].WidthMm != 1200 {
		t.Errorf("round trip mismatch: %+v", out[0])
	}
	if out[0].IsBuiltIn {
		t.Error("loaded systems must not be marked built-in")
	}
}

func TestExportImportSystemTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.toml")

	if err := ExportSystem(path, testSystem("Shared 400")); err != nil {
		t.Fatalf("ExportSystem: %v", err)
	}

	imported, err := ImportSystem(path)
	if err != nil {
		t.Fatalf("ImportSystem: %v", err)
	}
	if imported.Name != "Shared 400" {
		t.Errorf("imported name = %q", imported.Name)
	}
	if imported.Stud.ThicknessMm != 50 {
		t.Errorf("imported stud = %+v", imported.Stud)
	}
	if imported.Blocks[2].WidthMm != 400 {
		t.Errorf("imported blocks = %+v", imported.Blocks)
	}
}

func TestImportSystemRejectsNameless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.toml")
	if err := ExportSystem(path, model.BlockSystem{}); err != nil {
		t.Fatalf("ExportSystem: %v", err)
	}
	if _, err := ImportSystem(path); err == nil {
		t.Error("expected error for nameless system")
	}
}
