package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSystem(t *testing.T) {
	cfg := DefaultAppConfig()
	sys := BlockSystems[0]

	if cfg.DefaultSystem != sys.Name {
		t.Errorf("DefaultSystem = %q, want %q", cfg.DefaultSystem, sys.Name)
	}
	if cfg.DefaultThicknessMm != sys.Stud.ThicknessMm {
		t.Errorf("DefaultThicknessMm = %v, want %v", cfg.DefaultThicknessMm, sys.Stud.ThicknessMm)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should be an empty slice, not nil")
	}
}

func TestApplyToInputKeepsBlocks(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultThicknessMm = 70
	cfg.DefaultCounts = CategoryCounts{Large: 4, Medium: 3, Small: 2}

	in := standardInput()
	blocks := in.Blocks
	cfg.ApplyToInput(&in)

	if in.Blocks != blocks {
		t.Error("ApplyToInput must not touch block dimensions")
	}
	if in.Stud.ThicknessMm != 70 {
		t.Errorf("thickness = %v, want 70", in.Stud.ThicknessMm)
	}
	if in.Counts.Large != 4 {
		t.Errorf("Large count = %d, want 4", in.Counts.Large)
	}
}

func TestRememberProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.RememberProject("a")
	cfg.RememberProject("b")
	cfg.RememberProject("a") // moves to front, no duplicate

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 entries, got %v", cfg.RecentProjects)
	}
	if cfg.RecentProjects[0] != "a" || cfg.RecentProjects[1] != "b" {
		t.Errorf("unexpected order: %v", cfg.RecentProjects)
	}

	for i := 0; i < 20; i++ {
		cfg.RememberProject(string(rune('c' + i)))
	}
	if len(cfg.RecentProjects) != 10 {
		t.Errorf("recent list should cap at 10, got %d", len(cfg.RecentProjects))
	}
}
