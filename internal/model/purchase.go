package model

import "math"

// TimberEstimate holds the results of a stud purchasing calculation:
// how many timber bars to buy to cut all the studs a wall needs.
type TimberEstimate struct {
	StudsPerBlock  CategoryCounts `json:"studs_per_block"`  // Studs actually placed per block of each category
	TotalStuds     int            `json:"total_studs"`      // Studs required across all blocks
	StudLengthMm   float64        `json:"stud_length_mm"`   // Length of one stud
	BarLengthMm    float64        `json:"bar_length_mm"`    // Length of one purchasable bar
	StudsPerBar    int            `json:"studs_per_bar"`    // Whole studs cut from one bar
	OffcutPerBarMm float64        `json:"offcut_per_bar_mm"` // Unusable remainder per bar
	BarsNeededMin  int            `json:"bars_needed_min"`  // Minimum bars (ceiling of exact)
	BarsWithWaste  int            `json:"bars_with_waste"`  // Recommended bars including waste factor
	WastePercent   float64        `json:"waste_percent"`    // Waste factor applied (e.g., 10 for 10%)
	EstimatedCost  float64        `json:"estimated_cost"`   // Total cost if pricing available
	PricePerBar    float64        `json:"price_per_bar"`    // Price used for estimation
}

// EstimateTimber computes how many timber bars to buy to cut the studs for
// a wall built from the given number of blocks per category. Studs per
// block come from the config's actual placements, not the requested
// counts, so narrow blocks are not over-ordered. A degenerate bar length
// (shorter than one stud) yields a zeroed estimate, not an error.
func EstimateTimber(cfg *WallAssemblyConfig, blockCounts CategoryCounts, barLengthMm, wastePercent, pricePerBar float64) TimberEstimate {
	perBlock := CategoryCounts{
		Large:  len(cfg.Placement(CategoryLarge).PositionsMm),
		Medium: len(cfg.Placement(CategoryMedium).PositionsMm),
		Small:  len(cfg.Placement(CategorySmall).PositionsMm),
	}

	totalStuds := 0
	for _, id := range CategoryIDs {
		totalStuds += perBlock.For(id) * blockCounts.For(id)
	}

	est := TimberEstimate{
		StudsPerBlock: perBlock,
		TotalStuds:    totalStuds,
		StudLengthMm:  cfg.Stud.TotalHeightMm,
		BarLengthMm:   barLengthMm,
		WastePercent:  wastePercent,
		PricePerBar:   pricePerBar,
	}

	if barLengthMm <= 0 || cfg.Stud.TotalHeightMm <= 0 {
		return est
	}
	studsPerBar := int(barLengthMm / cfg.Stud.TotalHeightMm)
	if studsPerBar == 0 {
		return est
	}

	est.StudsPerBar = studsPerBar
	est.OffcutPerBarMm = barLengthMm - float64(studsPerBar)*cfg.Stud.TotalHeightMm

	exactBars := float64(totalStuds) / float64(studsPerBar)
	est.BarsNeededMin = int(math.Ceil(exactBars))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	est.BarsWithWaste = int(math.Ceil(exactBars * wasteFactor))
	if est.BarsWithWaste < est.BarsNeededMin {
		est.BarsWithWaste = est.BarsNeededMin
	}

	est.EstimatedCost = float64(est.BarsWithWaste) * pricePerBar
	return est
}
