package model

import (
	"testing"

	"github.com/mverdi/wallplan/pkg/errors"
)

func TestGetSystemFallsBackToDefault(t *testing.T) {
	s := GetSystem("NonExistent")
	if s.Name != BlockSystems[0].Name {
		t.Errorf("expected default system, got %s", s.Name)
	}
	if s := GetSystem(""); s.Name != BlockSystems[0].Name {
		t.Errorf("empty name should return default, got %s", s.Name)
	}
}

func TestFindSystemErrorsOnUnknownName(t *testing.T) {
	if _, err := FindSystem("Modulo 413"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := FindSystem("NonExistent")
	if !errors.Is(err, errors.ErrCodeSystemNotFound) {
		t.Errorf("expected SYSTEM_NOT_FOUND, got %v", err)
	}
}

func TestDefaultSystemInputBuilds(t *testing.T) {
	for _, s := range BlockSystems {
		cfg, err := BuildConfig(s.Input())
		if err != nil {
			t.Errorf("built-in system %q does not build: %v", s.Name, err)
			continue
		}
		if len(cfg.Warnings()) != 0 {
			t.Errorf("built-in system %q has warnings: %v", s.Name, cfg.Warnings())
		}
	}
}

func TestAddCustomSystem(t *testing.T) {
	CustomSystems = nil
	defer func() { CustomSystems = nil }()

	custom := BlockSystem{
		Name: "Test 600",
		Blocks: [3]BlockDimensions{
			{WidthMm: 1800, HeightMm: 600},
			{WidthMm: 1200, HeightMm: 600},
			{WidthMm: 600, HeightMm: 600},
		},
		Stud:   StudSpec{ThicknessMm: 70, TotalHeightMm: 600, GroundClearanceMm: 120},
		Counts: CategoryCounts{Large: 3, Medium: 2, Small: 1},
	}
	if err := AddCustomSystem(custom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GetSystem("Test 600"); got.Name != "Test 600" {
		t.Errorf("custom system not retrievable, got %s", got.Name)
	}

	// Duplicate and nameless systems are rejected
	if err := AddCustomSystem(custom); err == nil {
		t.Error("expected error for duplicate name")
	}
	if err := AddCustomSystem(BlockSystem{}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestRemoveCustomSystem(t *testing.T) {
	CustomSystems = []BlockSystem{{Name: "Removable"}}
	defer func() { CustomSystems = nil }()

	if !RemoveCustomSystem("Removable") {
		t.Error("expected removal to succeed")
	}
	if RemoveCustomSystem("Removable") {
		t.Error("second removal should report false")
	}
	if RemoveCustomSystem("Modulo 413") {
		t.Error("built-in systems must not be removable")
	}
}

func TestSystemNamesIncludesCustom(t *testing.T) {
	CustomSystems = []BlockSystem{{Name: "CustomX"}}
	defer func() { CustomSystems = nil }()

	found := map[string]bool{}
	for _, n := range SystemNames() {
		found[n] = true
	}
	if !found["Modulo 413"] {
		t.Error("missing built-in system Modulo 413")
	}
	if !found["CustomX"] {
		t.Error("missing custom system CustomX")
	}
}
