package model

import "testing"

func TestEstimateTimber(t *testing.T) {
	cfg, err := BuildConfig(standardInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 10 large, 5 medium, 4 small blocks → 10*3 + 5*2 + 4*1 = 44 studs
	est := EstimateTimber(cfg, CategoryCounts{Large: 10, Medium: 5, Small: 4}, 3000, 10, 8.50)

	if est.TotalStuds != 44 {
		t.Errorf("TotalStuds = %d, want 44", est.TotalStuds)
	}
	if est.StudsPerBar != 6 { // floor(3000/495)
		t.Errorf("StudsPerBar = %d, want 6", est.StudsPerBar)
	}
	if est.OffcutPerBarMm != 3000-6*495 {
		t.Errorf("OffcutPerBarMm = %v, want %v", est.OffcutPerBarMm, 3000-6*495)
	}
	if est.BarsNeededMin != 8 { // ceil(44/6)
		t.Errorf("BarsNeededMin = %d, want 8", est.BarsNeededMin)
	}
	if est.BarsWithWaste != 9 { // ceil(44/6 * 1.1) = ceil(8.066)
		t.Errorf("BarsWithWaste = %d, want 9", est.BarsWithWaste)
	}
	if est.EstimatedCost != 9*8.50 {
		t.Errorf("EstimatedCost = %v, want %v", est.EstimatedCost, 9*8.50)
	}
}

func TestEstimateTimberUsesPlacedNotRequestedCounts(t *testing.T) {
	in := standardInput()
	in.Counts.Small = 3 // only 1 fits
	cfg, err := BuildConfig(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	est := EstimateTimber(cfg, CategoryCounts{Large: 0, Medium: 0, Small: 10}, 3000, 0, 0)
	if est.StudsPerBlock.Small != 1 {
		t.Errorf("StudsPerBlock.Small = %d, want placed count 1", est.StudsPerBlock.Small)
	}
	if est.TotalStuds != 10 {
		t.Errorf("TotalStuds = %d, want 10", est.TotalStuds)
	}
}

func TestEstimateTimberDegenerateBar(t *testing.T) {
	cfg, err := BuildConfig(standardInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bar shorter than one stud: zeroed estimate, not an error
	est := EstimateTimber(cfg, CategoryCounts{Large: 1, Medium: 1, Small: 1}, 100, 10, 5)
	if est.StudsPerBar != 0 || est.BarsNeededMin != 0 || est.EstimatedCost != 0 {
		t.Errorf("expected zeroed estimate for degenerate bar, got %+v", est)
	}
	if est.TotalStuds != 6 {
		t.Errorf("TotalStuds should still be computed, got %d", est.TotalStuds)
	}

	est = EstimateTimber(cfg, CategoryCounts{Large: 1, Medium: 1, Small: 1}, 0, 10, 5)
	if est.StudsPerBar != 0 {
		t.Errorf("zero bar length should zero the estimate, got %+v", est)
	}
}
