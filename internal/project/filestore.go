package project

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mverdi/wallplan/internal/model"
)

// FileStore persists each project as one JSON document under a directory.
// Keys are sanitized to safe filenames; the original key is kept inside
// the document.
type FileStore struct {
	dir string
}

// DefaultProjectsDir returns the default directory for saved projects,
// ~/.wallplan/projects.
func DefaultProjectsDir() string {
	return filepath.Join(DefaultConfigDir(), "projects")
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
// An empty dir selects the default projects directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = DefaultProjectsDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *FileStore) Dir() string { return s.dir }

// Load reads the project for key, or returns a default when no file exists.
func (s *FileStore) Load(ctx context.Context, key string) (model.Project, error) {
	if err := ctx.Err(); err != nil {
		return model.Project{}, err
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultProject(key), nil
		}
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

// Save writes the project for key as indented JSON.
func (s *FileStore) Save(ctx context.Context, key string, p model.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0644)
}

// List returns the keys of all saved projects in sorted order.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

// Delete removes the project file for key. Deleting an absent key is a no-op.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitizeKey(key)+".json")
}

// sanitizeKey maps a project key to a safe filename. Path separators and
// control characters become underscores; an empty key becomes "_".
func sanitizeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == 0:
			b.WriteRune('_')
		case r < 0x20:
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
