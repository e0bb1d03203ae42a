package model

import "testing"

func TestNewAssemblyTemplate(t *testing.T) {
	tpl := NewAssemblyTemplate("South wall", "ground floor", "Modulo 413", standardInput())
	if tpl.ID == "" {
		t.Error("template has no ID")
	}
	if tpl.CreatedAt == "" || tpl.CreatedAt != tpl.UpdatedAt {
		t.Error("timestamps not initialized")
	}

	p := tpl.ToProject("South wall v2")
	if p.Name != "South wall v2" {
		t.Errorf("project name = %q", p.Name)
	}
	if p.System != "Modulo 413" {
		t.Errorf("project system = %q", p.System)
	}
	if p.Input != tpl.Input {
		t.Error("project input should copy the template input")
	}
}

func TestTemplateStoreAddRemoveFind(t *testing.T) {
	ts := NewTemplateStore()
	a := NewAssemblyTemplate("a", "", "Modulo 413", standardInput())
	b := NewAssemblyTemplate("b", "", "Modulo 500", standardInput())
	ts.Add(a)
	ts.Add(b)

	if got := ts.FindByID(a.ID); got == nil || got.Name != "a" {
		t.Error("FindByID failed")
	}
	if got := ts.FindByName("b"); got == nil || got.ID != b.ID {
		t.Error("FindByName failed")
	}
	if ts.FindByID("missing") != nil {
		t.Error("FindByID should return nil for unknown id")
	}

	names := ts.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v", names)
	}

	if !ts.Remove(a.ID) {
		t.Error("Remove should succeed for existing template")
	}
	if ts.Remove(a.ID) {
		t.Error("second Remove should report false")
	}
	if len(ts.Templates) != 1 {
		t.Errorf("expected 1 template left, got %d", len(ts.Templates))
	}
}
