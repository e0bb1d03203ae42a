package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mverdi/wallplan/internal/model"
)

func TestExportImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "wallplan-backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultWastePercent = 20

	systems := []model.BlockSystem{testSystem("Backup 400")}
	templates := model.NewTemplateStore()
	templates.Add(model.NewAssemblyTemplate("tpl", "", "Modulo 413", model.BlockSystems[0].Input()))
	inv := model.DefaultInventory()

	if err := ExportAllData(path, cfg, systems, templates, inv); err != nil {
		t.Fatalf("ExportAllData: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData: %v", err)
	}
	if backup.Version == "" || backup.CreatedAt == "" {
		t.Error("backup envelope missing version or timestamp")
	}
	if backup.Config.DefaultWastePercent != 20 {
		t.Errorf("config not round tripped: %+v", backup.Config)
	}
	if len(backup.Systems) != 1 || backup.Systems[0].Name != "Backup 400" {
		t.Errorf("systems not round tripped: %+v", backup.Systems)
	}
	if len(backup.Templates.Templates) != 1 {
		t.Errorf("templates not round tripped: %+v", backup.Templates)
	}
	if len(backup.Inventory.Studs) == 0 {
		t.Error("inventory not round tripped")
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for backup without version")
	}
}
