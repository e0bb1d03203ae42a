package model

import (
	"time"

	"github.com/google/uuid"
)

// AssemblyTemplate represents a reusable named assembly configuration.
type AssemblyTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	System      string        `json:"system"`
	Input       AssemblyInput `json:"input"`
}

// NewAssemblyTemplate creates a new template from the given input.
func NewAssemblyTemplate(name, description, system string, input AssemblyInput) AssemblyTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return AssemblyTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		System:      system,
		Input:       input,
	}
}

// ToProject creates a new Project from this template.
func (t AssemblyTemplate) ToProject(projectName string) Project {
	return Project{
		Name:      projectName,
		System:    t.System,
		Input:     t.Input,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// TemplateStore holds a collection of assembly templates.
type TemplateStore struct {
	Templates []AssemblyTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []AssemblyTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t AssemblyTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *AssemblyTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *AssemblyTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for selection prompts.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
