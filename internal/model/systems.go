package model

import "github.com/mverdi/wallplan/pkg/errors"

// BlockSystem names a manufacturer block series: the three block
// dimensions plus the recommended stud defaults for that series.
type BlockSystem struct {
	Name        string             `json:"name" toml:"name"`
	Description string             `json:"description" toml:"description"`
	Blocks      [3]BlockDimensions `json:"blocks" toml:"blocks"` // Descending width order
	Stud        StudSpec           `json:"stud" toml:"stud"`
	SpacingMm   float64            `json:"spacing_mm" toml:"spacing_mm"` // 0 means use the suggested spacing
	Counts      CategoryCounts     `json:"counts" toml:"counts"`
	IsBuiltIn   bool               `json:"-" toml:"-"`
}

// Input returns an AssemblyInput seeded with this system's defaults.
func (s BlockSystem) Input() AssemblyInput {
	return AssemblyInput{
		Blocks:    s.Blocks,
		Stud:      s.Stud,
		SpacingMm: s.SpacingMm,
		Counts:    s.Counts,
	}
}

// Built-in block systems. The first entry is the default.
var BlockSystems = []BlockSystem{
	{
		Name:        "Modulo 413",
		Description: "Standard 413 mm module, 495 mm course height",
		Blocks: [3]BlockDimensions{
			{WidthMm: 1239, HeightMm: 495},
			{WidthMm: 826, HeightMm: 495},
			{WidthMm: 413, HeightMm: 495},
		},
		Stud:      StudSpec{ThicknessMm: 58, TotalHeightMm: 495, GroundClearanceMm: 95},
		Counts:    CategoryCounts{Large: 3, Medium: 2, Small: 1},
		IsBuiltIn: true,
	},
	{
		Name:        "Modulo 500",
		Description: "Heavy 500 mm module for load-bearing walls",
		Blocks: [3]BlockDimensions{
			{WidthMm: 1500, HeightMm: 500},
			{WidthMm: 1000, HeightMm: 500},
			{WidthMm: 500, HeightMm: 500},
		},
		Stud:      StudSpec{ThicknessMm: 60, TotalHeightMm: 500, GroundClearanceMm: 100},
		Counts:    CategoryCounts{Large: 3, Medium: 2, Small: 1},
		IsBuiltIn: true,
	},
	{
		Name:        "Compact 330",
		Description: "Light 330 mm module for partition walls",
		Blocks: [3]BlockDimensions{
			{WidthMm: 990, HeightMm: 330},
			{WidthMm: 660, HeightMm: 330},
			{WidthMm: 330, HeightMm: 330},
		},
		Stud:      StudSpec{ThicknessMm: 45, TotalHeightMm: 330, GroundClearanceMm: 60},
		Counts:    CategoryCounts{Large: 3, Medium: 2, Small: 1},
		IsBuiltIn: true,
	},
}

// CustomSystems holds user-defined block systems loaded from disk.
var CustomSystems []BlockSystem

// AllSystems returns built-in systems followed by custom ones.
func AllSystems() []BlockSystem {
	all := make([]BlockSystem, 0, len(BlockSystems)+len(CustomSystems))
	all = append(all, BlockSystems...)
	all = append(all, CustomSystems...)
	return all
}

// GetSystem returns a block system by name, or the default system if the
// name is empty. Unknown names fall back to the default as well; use
// FindSystem when the distinction matters.
func GetSystem(name string) BlockSystem {
	for _, s := range AllSystems() {
		if s.Name == name {
			return s
		}
	}
	return BlockSystems[0]
}

// FindSystem returns a block system by name, or an error if no system with
// that name exists.
func FindSystem(name string) (BlockSystem, error) {
	for _, s := range AllSystems() {
		if s.Name == name {
			return s, nil
		}
	}
	return BlockSystem{}, errors.New(errors.ErrCodeSystemNotFound, "no block system named %q", name)
}

// SystemNames returns the names of all available systems.
func SystemNames() []string {
	all := AllSystems()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// AddCustomSystem registers a custom system. The name must be non-empty and
// must not collide with an existing system.
func AddCustomSystem(s BlockSystem) error {
	if s.Name == "" {
		return errors.New(errors.ErrCodeInvalidConfiguration, "block system has no name")
	}
	for _, existing := range AllSystems() {
		if existing.Name == s.Name {
			return errors.New(errors.ErrCodeInvalidConfiguration, "block system %q already exists", s.Name)
		}
	}
	s.IsBuiltIn = false
	CustomSystems = append(CustomSystems, s)
	return nil
}

// RemoveCustomSystem removes a custom system by name. Built-in systems
// cannot be removed. Returns true if a system was removed.
func RemoveCustomSystem(name string) bool {
	for i, s := range CustomSystems {
		if s.Name == name {
			CustomSystems = append(CustomSystems[:i], CustomSystems[i+1:]...)
			return true
		}
	}
	return false
}
