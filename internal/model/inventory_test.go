package model

import "testing"

func TestDefaultInventoryHasEntries(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Studs) == 0 {
		t.Error("default inventory has no stud profiles")
	}
	if len(inv.Bars) == 0 {
		t.Error("default inventory has no timber bars")
	}
	for _, s := range inv.Studs {
		if s.ID == "" {
			t.Errorf("stud profile %q has no ID", s.Name)
		}
	}
}

func TestStudProfileApplyToInput(t *testing.T) {
	in := standardInput()
	p := NewStudProfile("test", 70, 600, 120)
	p.ApplyToInput(&in)

	if in.Stud.ThicknessMm != 70 || in.Stud.TotalHeightMm != 600 || in.Stud.GroundClearanceMm != 120 {
		t.Errorf("unexpected stud after apply: %+v", in.Stud)
	}
	if in.SpacingMm != 413 {
		t.Error("profile must not touch spacing")
	}
}

func TestInventoryFinders(t *testing.T) {
	inv := DefaultInventory()

	byName := inv.FindStudByName(inv.Studs[0].Name)
	if byName == nil {
		t.Fatal("FindStudByName returned nil for existing profile")
	}
	if got := inv.FindStudByID(byName.ID); got == nil || got.Name != byName.Name {
		t.Error("FindStudByID disagrees with FindStudByName")
	}
	if inv.FindStudByName("nope") != nil {
		t.Error("FindStudByName should return nil for unknown name")
	}

	bar := inv.FindBarByName(inv.Bars[0].Name)
	if bar == nil {
		t.Fatal("FindBarByName returned nil for existing bar")
	}
	if inv.FindBarByID("ffffffff") != nil {
		t.Error("FindBarByID should return nil for unknown id")
	}

	if len(inv.StudNames()) != len(inv.Studs) {
		t.Error("StudNames length mismatch")
	}
	if len(inv.BarNames()) != len(inv.Bars) {
		t.Error("BarNames length mismatch")
	}
}
