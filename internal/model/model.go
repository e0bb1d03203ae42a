package model

import (
	stderrors "errors"
	"fmt"
	"math"

	"github.com/mverdi/wallplan/pkg/errors"
)

// CategoryID identifies one of the three standard block widths.
type CategoryID int

const (
	CategoryLarge  CategoryID = iota // Widest block
	CategoryMedium                   // Middle block
	CategorySmall                    // Narrowest block
)

// CategoryIDs lists all categories in descending width order.
var CategoryIDs = [3]CategoryID{CategoryLarge, CategoryMedium, CategorySmall}

func (c CategoryID) String() string {
	switch c {
	case CategoryLarge:
		return "Large"
	case CategoryMedium:
		return "Medium"
	case CategorySmall:
		return "Small"
	default:
		return "Unknown"
	}
}

// BlockDimensions holds the raw width and height of one block type as
// entered by the operator, before classification.
type BlockDimensions struct {
	WidthMm  float64 `json:"width_mm" toml:"width_mm"`
	HeightMm float64 `json:"height_mm" toml:"height_mm"`
}

// BlockCategory is one classified block type. Categories are ordered by
// strictly descending width: Large > Medium > Small.
type BlockCategory struct {
	ID       CategoryID `json:"id"`
	WidthMm  float64    `json:"width_mm"`
	HeightMm float64    `json:"height_mm"`
}

// StudSpec describes the vertical reinforcing stud shared by all categories.
type StudSpec struct {
	ThicknessMm       float64 `json:"thickness_mm" toml:"thickness_mm"`
	TotalHeightMm     float64 `json:"total_height_mm" toml:"total_height_mm"`
	GroundClearanceMm float64 `json:"ground_clearance_mm" toml:"ground_clearance_mm"`
}

// HeightComposition decomposes a stud's total height relative to one block:
// the footing protrudes below the block into the floor track, the embedded
// segment sits inside the block, and the interlock clearance is the space
// left above the stud to receive the block stacked on top.
type HeightComposition struct {
	FootingMm            float64 `json:"footing_mm"`
	EmbeddedMm           float64 `json:"embedded_mm"`
	InterlockClearanceMm float64 `json:"interlock_clearance_mm"`
}

// StudPlacement holds the computed stud center offsets for one category.
// Offsets are measured from the block's trailing (right) edge so that studs
// line up across categories regardless of block width.
type StudPlacement struct {
	Category       BlockCategory `json:"category"`
	RequestedCount int           `json:"requested_count"`
	PositionsMm    []float64     `json:"positions_mm"`
}

// Shortfall returns how many requested studs could not be placed because
// the block is too narrow for the configured spacing.
func (p StudPlacement) Shortfall() int {
	return p.RequestedCount - len(p.PositionsMm)
}

// CategoryCounts holds the requested stud count per category.
type CategoryCounts struct {
	Large  int `json:"large" toml:"large"`
	Medium int `json:"medium" toml:"medium"`
	Small  int `json:"small" toml:"small"`
}

// For returns the count for the given category.
func (c CategoryCounts) For(id CategoryID) int {
	switch id {
	case CategoryLarge:
		return c.Large
	case CategoryMedium:
		return c.Medium
	default:
		return c.Small
	}
}

// AssemblyInput is the typed boundary between the UI layer and the core
// computation. It is validated once by BuildConfig; the algorithms below
// never read ambient state.
type AssemblyInput struct {
	Blocks    [3]BlockDimensions `json:"blocks"`
	Stud      StudSpec           `json:"stud"`
	SpacingMm float64            `json:"spacing_mm"` // 0 selects the suggested spacing
	Counts    CategoryCounts     `json:"counts"`
}

// NarrowBlockWarning reports that a category received fewer studs than
// requested due to boundary clipping. It is non-fatal and never blocks
// the configuration.
type NarrowBlockWarning struct {
	Category  CategoryID `json:"category"`
	Requested int        `json:"requested"`
	Placed    int        `json:"placed"`
}

func (w NarrowBlockWarning) String() string {
	return fmt.Sprintf("%s block too narrow: %d of %d studs placed", w.Category, w.Placed, w.Requested)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ClassifyBlocks sorts three block dimensions into Large/Medium/Small
// categories by strictly descending width. Duplicate, non-positive, and
// non-finite widths and non-positive heights are configuration errors.
// NaN must be rejected explicitly: it passes both the positivity and the
// duplicate comparisons.
func ClassifyBlocks(blocks [3]BlockDimensions) ([3]BlockCategory, error) {
	for _, b := range blocks {
		if !isFinite(b.WidthMm) || !isFinite(b.HeightMm) {
			return [3]BlockCategory{}, errors.New(errors.ErrCodeInvalidConfiguration,
				"block dimensions must be finite, got %v x %v mm", b.WidthMm, b.HeightMm)
		}
		if b.WidthMm <= 0 {
			return [3]BlockCategory{}, errors.New(errors.ErrCodeInvalidConfiguration,
				"block width must be positive, got %.1f mm", b.WidthMm)
		}
		if b.HeightMm <= 0 {
			return [3]BlockCategory{}, errors.New(errors.ErrCodeInvalidConfiguration,
				"block height must be positive, got %.1f mm", b.HeightMm)
		}
	}

	sorted := blocks
	// Three elements: a fixed sort network keeps this allocation-free.
	if sorted[0].WidthMm < sorted[1].WidthMm {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	if sorted[1].WidthMm < sorted[2].WidthMm {
		sorted[1], sorted[2] = sorted[2], sorted[1]
	}
	if sorted[0].WidthMm < sorted[1].WidthMm {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}

	if sorted[0].WidthMm == sorted[1].WidthMm || sorted[1].WidthMm == sorted[2].WidthMm {
		return [3]BlockCategory{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"block widths must be distinct, got %.1f, %.1f and %.1f mm",
			sorted[0].WidthMm, sorted[1].WidthMm, sorted[2].WidthMm)
	}

	var cats [3]BlockCategory
	for i, id := range CategoryIDs {
		cats[i] = BlockCategory{ID: id, WidthMm: sorted[i].WidthMm, HeightMm: sorted[i].HeightMm}
	}
	return cats, nil
}

// SuggestSpacing derives a default stud spacing from the widest category:
// floor(maxWidth / 3), which yields roughly three evenly spaced studs
// across the widest block. The suggestion is advisory only and never
// enforced; the operator can override it.
func SuggestSpacing(cats [3]BlockCategory) float64 {
	maxWidth := cats[0].WidthMm
	for _, c := range cats[1:] {
		if c.WidthMm > maxWidth {
			maxWidth = c.WidthMm
		}
	}
	return math.Floor(maxWidth / 3)
}

// StudPositions computes stud center offsets for one block width, measured
// from the block's trailing (right) edge. Offsets form the arithmetic
// sequence i*spacing for i = 0..requestedCount-1, truncated at the first
// candidate whose stud footprint would cross the block's leading edge
// (width - offset - thickness/2 < 0). Generation stops at the first
// failure rather than skipping and continuing, so the result is always a
// prefix of the untruncated sequence.
//
// Because offsets depend only on spacing and index, never on width, any
// two categories sharing the same spacing produce the same sequence
// truncated at different lengths: studs in every block line up when
// referenced from the trailing edge. An empty result is valid output for a
// block too narrow for even one stud.
func StudPositions(widthMm, spacingMm, thicknessMm float64, requestedCount int) []float64 {
	positions := make([]float64, 0, max(requestedCount, 0))
	half := thicknessMm / 2
	for i := 0; i < requestedCount; i++ {
		offset := float64(i) * spacingMm
		if widthMm-offset-half < 0 {
			break
		}
		positions = append(positions, offset)
	}
	return positions
}

// ComposeHeight validates and decomposes the stud's total height against
// one category's block height. The footing equals the ground clearance,
// the embedded segment is what remains of the stud inside the block, and
// the interlock clearance is the space left above it. A negative clearance
// means the stud would protrude above the block, leaving no room for the
// next block's interlocking feature; that is an error, never a clamp.
func ComposeHeight(spec StudSpec, cat BlockCategory) (HeightComposition, error) {
	embedded := spec.TotalHeightMm - spec.GroundClearanceMm
	clearance := cat.HeightMm - embedded
	if clearance < 0 {
		return HeightComposition{}, errors.New(errors.ErrCodeIncompatibleHeight,
			"%s: embedded stud height %.1f mm exceeds block height %.1f mm (clearance %.1f mm)",
			cat.ID, embedded, cat.HeightMm, clearance)
	}
	return HeightComposition{
		FootingMm:            spec.GroundClearanceMm,
		EmbeddedMm:           embedded,
		InterlockClearanceMm: clearance,
	}, nil
}

// WallAssemblyConfig is the complete immutable configuration consumed by
// preview renderers and forwarded to the external packing engine. It is
// only ever produced by BuildConfig; any input change rebuilds the whole
// value rather than mutating it.
type WallAssemblyConfig struct {
	Stud       StudSpec             `json:"stud"`
	SpacingMm  float64              `json:"spacing_mm"`
	Placements [3]StudPlacement     `json:"placements"`
	Heights    [3]HeightComposition `json:"heights"`
}

// BuildConfig validates an AssemblyInput and runs the full pipeline:
// classify blocks, resolve spacing, generate stud positions per category,
// and compose the stud height against each category. Failures abort
// atomically with no partial output; per-category height failures are
// joined so every affected category is reported.
func BuildConfig(in AssemblyInput) (*WallAssemblyConfig, error) {
	cats, err := ClassifyBlocks(in.Blocks)
	if err != nil {
		return nil, err
	}

	spacing := in.SpacingMm
	if spacing == 0 {
		spacing = SuggestSpacing(cats)
	}
	if spacing <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"spacing must be positive, got %.1f mm", spacing)
	}
	if in.Stud.ThicknessMm <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"stud thickness must be positive, got %.1f mm", in.Stud.ThicknessMm)
	}
	if in.Stud.TotalHeightMm <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"stud height must be positive, got %.1f mm", in.Stud.TotalHeightMm)
	}
	if in.Stud.GroundClearanceMm < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"ground clearance must not be negative, got %.1f mm", in.Stud.GroundClearanceMm)
	}
	if in.Stud.GroundClearanceMm >= in.Stud.TotalHeightMm {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"ground clearance %.1f mm leaves no embedded segment in a %.1f mm stud",
			in.Stud.GroundClearanceMm, in.Stud.TotalHeightMm)
	}
	for _, id := range CategoryIDs {
		if in.Counts.For(id) <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration,
				"%s stud count must be positive, got %d", id, in.Counts.For(id))
		}
	}

	cfg := &WallAssemblyConfig{Stud: in.Stud, SpacingMm: spacing}

	var heightErrs []error
	for i, cat := range cats {
		cfg.Placements[i] = StudPlacement{
			Category:       cat,
			RequestedCount: in.Counts.For(cat.ID),
			PositionsMm:    StudPositions(cat.WidthMm, spacing, in.Stud.ThicknessMm, in.Counts.For(cat.ID)),
		}
		comp, err := ComposeHeight(in.Stud, cat)
		if err != nil {
			heightErrs = append(heightErrs, err)
			continue
		}
		cfg.Heights[i] = comp
	}
	if len(heightErrs) > 0 {
		return nil, stderrors.Join(heightErrs...)
	}

	return cfg, nil
}

// Placement returns the stud placement for the given category.
func (c *WallAssemblyConfig) Placement(id CategoryID) StudPlacement {
	return c.Placements[int(id)]
}

// Height returns the height composition for the given category.
func (c *WallAssemblyConfig) Height(id CategoryID) HeightComposition {
	return c.Heights[int(id)]
}

// Warnings derives the non-fatal narrow block warnings: categories that
// received fewer studs than requested. Warnings are computed on demand so
// the config value itself stays bit-identical across rebuilds with the
// same inputs.
func (c *WallAssemblyConfig) Warnings() []NarrowBlockWarning {
	var warnings []NarrowBlockWarning
	for _, p := range c.Placements {
		if p.Shortfall() > 0 {
			warnings = append(warnings, NarrowBlockWarning{
				Category:  p.Category.ID,
				Requested: p.RequestedCount,
				Placed:    len(p.PositionsMm),
			})
		}
	}
	return warnings
}

// StudsPerCourse returns the total studs placed across one block of each
// category.
func (c *WallAssemblyConfig) StudsPerCourse() int {
	total := 0
	for _, p := range c.Placements {
		total += len(p.PositionsMm)
	}
	return total
}

// Blocks returns the classified block dimensions in Large/Medium/Small
// order, for rebuilding an AssemblyInput from a config.
func (c *WallAssemblyConfig) Blocks() [3]BlockDimensions {
	var blocks [3]BlockDimensions
	for i, p := range c.Placements {
		blocks[i] = BlockDimensions{WidthMm: p.Category.WidthMm, HeightMm: p.Category.HeightMm}
	}
	return blocks
}
