package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default assembly inputs applied to new projects
	DefaultSystem          string         `json:"default_system"`
	DefaultSpacingMm       float64        `json:"default_spacing_mm"` // 0 = use the suggested spacing
	DefaultThicknessMm     float64        `json:"default_thickness_mm"`
	DefaultStudHeightMm    float64        `json:"default_stud_height_mm"`
	DefaultGroundClearance float64        `json:"default_ground_clearance_mm"`
	DefaultCounts          CategoryCounts `json:"default_counts"`

	// Purchase estimation defaults
	DefaultBarLengthMm  float64 `json:"default_bar_length_mm"`
	DefaultWastePercent float64 `json:"default_waste_percent"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with the default block
// system's stud settings.
func DefaultAppConfig() AppConfig {
	sys := BlockSystems[0]
	return AppConfig{
		DefaultSystem:          sys.Name,
		DefaultSpacingMm:       sys.SpacingMm,
		DefaultThicknessMm:     sys.Stud.ThicknessMm,
		DefaultStudHeightMm:    sys.Stud.TotalHeightMm,
		DefaultGroundClearance: sys.Stud.GroundClearanceMm,
		DefaultCounts:          sys.Counts,
		DefaultBarLengthMm:     3000,
		DefaultWastePercent:    10,
		RecentProjects:         []string{},
	}
}

// ApplyToInput copies the saved defaults into an AssemblyInput. Block
// dimensions keep their current values; only stud settings, spacing, and
// counts are overridden.
func (c AppConfig) ApplyToInput(in *AssemblyInput) {
	in.Stud.ThicknessMm = c.DefaultThicknessMm
	in.Stud.TotalHeightMm = c.DefaultStudHeightMm
	in.Stud.GroundClearanceMm = c.DefaultGroundClearance
	in.SpacingMm = c.DefaultSpacingMm
	in.Counts = c.DefaultCounts
}

// RememberProject prepends a project key to the recent list, dropping
// duplicates and keeping at most ten entries.
func (c *AppConfig) RememberProject(key string) {
	recent := []string{key}
	for _, p := range c.RecentProjects {
		if p != key {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentProjects = recent
}
