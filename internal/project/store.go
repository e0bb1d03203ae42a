// Package project provides persistence for wall plans and application data.
//
// Projects go through the Store interface, which has memory, file, SQLite,
// and Redis implementations; the caller picks one and injects it. App
// config, custom block systems, templates, and inventory are simple JSON
// files under the config directory.
package project

import (
	"context"
	"sort"
	"sync"

	"github.com/mverdi/wallplan/internal/model"
)

// Store is the key-value persistence contract for projects. Load returns
// the stored project for key, or a fresh default when the key has never
// been saved; a missing key is not an error. Use List to check existence.
type Store interface {
	Load(ctx context.Context, key string) (model.Project, error)
	Save(ctx context.Context, key string, p model.Project) error
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-memory Store for tests and embedding.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]model.Project
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]model.Project)}
}

// Load returns the stored project or a default for an unknown key.
func (s *MemoryStore) Load(ctx context.Context, key string) (model.Project, error) {
	if err := ctx.Err(); err != nil {
		return model.Project{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.projects[key]; ok {
		return p, nil
	}
	return model.DefaultProject(key), nil
}

// Save stores a project under key, replacing any previous value.
func (s *MemoryStore) Save(ctx context.Context, key string, p model.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[key] = p
	return nil
}

// List returns all saved keys in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.projects))
	for k := range s.projects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Delete removes a project. Deleting an absent key is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, key)
	return nil
}
