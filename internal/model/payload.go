package model

// EnginePayload is the configuration forwarded verbatim to the external
// packing engine, which lays blocks out across the real wall geometry.
// Field names are part of the wire contract and must not change.
type EnginePayload struct {
	SpacingMm          float64 `json:"spacing_mm"`
	MaxMoralettiLarge  int     `json:"max_moraletti_large"`
	MaxMoralettiMedium int     `json:"max_moraletti_medium"`
	MaxMoralettiSmall  int     `json:"max_moraletti_small"`
	ThicknessMm        float64 `json:"thickness_mm"`
	HeightMm           float64 `json:"height_mm"`
	HeightFromGroundMm float64 `json:"height_from_ground_mm"`
}

// Payload builds the engine payload from a validated configuration.
func (c *WallAssemblyConfig) Payload() EnginePayload {
	return EnginePayload{
		SpacingMm:          c.SpacingMm,
		MaxMoralettiLarge:  c.Placement(CategoryLarge).RequestedCount,
		MaxMoralettiMedium: c.Placement(CategoryMedium).RequestedCount,
		MaxMoralettiSmall:  c.Placement(CategorySmall).RequestedCount,
		ThicknessMm:        c.Stud.ThicknessMm,
		HeightMm:           c.Stud.TotalHeightMm,
		HeightFromGroundMm: c.Stud.GroundClearanceMm,
	}
}

// Input merges a payload received from the engine with block dimensions
// back into an AssemblyInput, so a stored payload can be recomputed and
// previewed locally.
func (p EnginePayload) Input(blocks [3]BlockDimensions) AssemblyInput {
	return AssemblyInput{
		Blocks: blocks,
		Stud: StudSpec{
			ThicknessMm:       p.ThicknessMm,
			TotalHeightMm:     p.HeightMm,
			GroundClearanceMm: p.HeightFromGroundMm,
		},
		SpacingMm: p.SpacingMm,
		Counts: CategoryCounts{
			Large:  p.MaxMoralettiLarge,
			Medium: p.MaxMoralettiMedium,
			Small:  p.MaxMoralettiSmall,
		},
	}
}
