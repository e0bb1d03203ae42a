package model

import "time"

// Project ties a named wall plan together for save/load. The stored unit
// is the raw AssemblyInput; the derived WallAssemblyConfig is always
// rebuilt from it rather than persisted.
type Project struct {
	Name      string        `json:"name"`
	System    string        `json:"system"`
	Input     AssemblyInput `json:"input"`
	Notes     string        `json:"notes,omitempty"`
	UpdatedAt string        `json:"updated_at"`
}

// NewProject creates a project seeded with the default block system.
func NewProject(name string) Project {
	return Project{
		Name:      name,
		System:    BlockSystems[0].Name,
		Input:     BlockSystems[0].Input(),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// DefaultProject returns the project a store hands out for a missing key.
func DefaultProject(key string) Project {
	return NewProject(key)
}

// Touch updates the modification timestamp.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
