package project

import (
	"path/filepath"
	"testing"

	"github.com/mverdi/wallplan/internal/model"
)

func TestLoadTemplatesMissingFile(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "templates.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should be an empty slice, not nil")
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store := model.NewTemplateStore()
	sys := model.BlockSystems[0]
	store.Add(model.NewAssemblyTemplate("South wall", "garden side", sys.Name, sys.Input()))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	got := loaded.Templates[0]
	if got.Name != "South wall" || got.System != sys.Name {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Input.Stud != sys.Stud {
		t.Errorf("stud spec mismatch: %+v", got.Input.Stud)
	}
}
