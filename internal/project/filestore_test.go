package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mverdi/wallplan/internal/model"
)

func TestFileStoreContract(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeContract(t, s)
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "projects")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	key := "walls/ground floor: south"
	p := model.NewProject(key)
	p.Notes = "sanitized"
	if err := s.Save(ctx, key, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// No path traversal: everything stays inside the store directory
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 file, got %d", len(entries))
	}

	got, err := s.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Notes != "sanitized" {
		t.Errorf("round trip through sanitized key failed: %+v", got)
	}
}

func TestSanitizeKey(t *testing.T) {
	cases := map[string]string{
		"plain":     "plain",
		"a/b":       "a_b",
		"a\\b:c":    "a_b_c",
		"":          "_",
		"with café": "with café",
	}
	for in, want := range cases {
		if got := sanitizeKey(in); got != want {
			t.Errorf("sanitizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}
