package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mverdi/wallplan/internal/model"
)

// DefaultSystemsPath returns the default file path for custom block systems.
func DefaultSystemsPath() string {
	return filepath.Join(DefaultConfigDir(), "systems.json")
}

// SaveCustomSystems saves custom block systems to a JSON file.
func SaveCustomSystems(path string, systems []model.BlockSystem) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(systems, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomSystems loads custom block systems from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomSystems(path string) ([]model.BlockSystem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.BlockSystem{}, nil
		}
		return nil, err
	}
	var systems []model.BlockSystem
	if err := json.Unmarshal(data, &systems); err != nil {
		return nil, err
	}
	// Loaded systems are never built-in
	for i := range systems {
		systems[i].IsBuiltIn = false
	}
	return systems, nil
}

// sharedSystem is the TOML envelope for a single exported system.
type sharedSystem struct {
	System model.BlockSystem `toml:"system"`
}

// ExportSystem exports a single block system to a TOML file for sharing.
func ExportSystem(path string, system model.BlockSystem) error {
	system.IsBuiltIn = false
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(sharedSystem{System: system})
}

// ImportSystem imports a single block system from a TOML file.
func ImportSystem(path string) (model.BlockSystem, error) {
	var shared sharedSystem
	if _, err := toml.DecodeFile(path, &shared); err != nil {
		return model.BlockSystem{}, err
	}
	shared.System.IsBuiltIn = false
	if shared.System.Name == "" {
		return model.BlockSystem{}, errors.New("imported system has no name")
	}
	return shared.System, nil
}
