package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mverdi/wallplan/internal/model"
)

func TestLoadInventoryCreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if len(inv.Studs) == 0 || len(inv.Bars) == 0 {
		t.Error("expected default inventory entries")
	}

	// The default should have been written to disk
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default inventory not persisted: %v", err)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv := model.Inventory{
		Studs: []model.StudProfile{model.NewStudProfile("test stud", 58, 495, 95)},
		Bars:  []model.TimberBar{model.NewTimberBar("test bar", 3000, 9.99, "Pine")},
	}
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if len(loaded.Studs) != 1 || loaded.Studs[0].Name != "test stud" {
		t.Errorf("studs mismatch: %+v", loaded.Studs)
	}
	if len(loaded.Bars) != 1 || loaded.Bars[0].Price != 9.99 {
		t.Errorf("bars mismatch: %+v", loaded.Bars)
	}
}

func TestImportInventoryMergesWithoutDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")

	shared := model.NewStudProfile("shared", 58, 495, 95)
	existing := model.Inventory{Studs: []model.StudProfile{shared}}

	toImport := model.Inventory{
		Studs: []model.StudProfile{shared, model.NewStudProfile("new", 60, 500, 100)},
		Bars:  []model.TimberBar{model.NewTimberBar("bar", 4000, 12, "Spruce")},
	}
	if err := SaveInventory(path, toImport); err != nil {
		t.Fatalf("SaveInventory: %v", err)
	}

	merged, err := ImportInventory(path, existing)
	if err != nil {
		t.Fatalf("ImportInventory: %v", err)
	}
	if len(merged.Studs) != 2 {
		t.Errorf("expected 2 studs after merge, got %d", len(merged.Studs))
	}
	if len(merged.Bars) != 1 {
		t.Errorf("expected 1 bar after merge, got %d", len(merged.Bars))
	}
}
