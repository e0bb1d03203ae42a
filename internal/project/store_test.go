package project

import (
	"context"
	"testing"

	"github.com/mverdi/wallplan/internal/model"
)

// storeContract exercises the Store semantics shared by all backends.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Missing key yields a default, not an error
	p, err := s.Load(ctx, "south-wall")
	if err != nil {
		t.Fatalf("Load missing key: %v", err)
	}
	if p.Name != "south-wall" {
		t.Errorf("default project name = %q, want key", p.Name)
	}
	if p.System != model.BlockSystems[0].Name {
		t.Errorf("default project system = %q", p.System)
	}

	// Missing keys do not appear in List
	keys, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("expected empty list, got %v", keys)
	}

	// Save then load round trip
	p.Notes = "garden side"
	p.Input.SpacingMm = 450
	p.Touch()
	if err := s.Save(ctx, "south-wall", p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "south-wall")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Notes != "garden side" || got.Input.SpacingMm != 450 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := s.Save(ctx, "north-wall", model.NewProject("north-wall")); err != nil {
		t.Fatalf("Save second: %v", err)
	}
	keys, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 2 || keys[0] != "north-wall" || keys[1] != "south-wall" {
		t.Errorf("List = %v, want sorted [north-wall south-wall]", keys)
	}

	// Delete is idempotent
	if err := s.Delete(ctx, "north-wall"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "north-wall"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	keys, _ = s.List(ctx)
	if len(keys) != 1 {
		t.Errorf("expected 1 key after delete, got %v", keys)
	}
}

func TestMemoryStoreContract(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStoreHonorsCancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Load(ctx, "k"); err == nil {
		t.Error("Load should fail on a cancelled context")
	}
	if err := s.Save(ctx, "k", model.NewProject("k")); err == nil {
		t.Error("Save should fail on a cancelled context")
	}
}
