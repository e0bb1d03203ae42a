package model

import "github.com/google/uuid"

// StudProfile represents a reusable stud dimension preset.
type StudProfile struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	ThicknessMm       float64 `json:"thickness_mm"`
	TotalHeightMm     float64 `json:"total_height_mm"`
	GroundClearanceMm float64 `json:"ground_clearance_mm"`
}

// NewStudProfile creates a new StudProfile with a generated ID.
func NewStudProfile(name string, thickness, totalHeight, groundClearance float64) StudProfile {
	return StudProfile{
		ID:                uuid.New().String()[:8],
		Name:              name,
		ThicknessMm:       thickness,
		TotalHeightMm:     totalHeight,
		GroundClearanceMm: groundClearance,
	}
}

// ApplyToInput copies this profile's stud dimensions into the given input.
func (sp StudProfile) ApplyToInput(in *AssemblyInput) {
	in.Stud.ThicknessMm = sp.ThicknessMm
	in.Stud.TotalHeightMm = sp.TotalHeightMm
	in.Stud.GroundClearanceMm = sp.GroundClearanceMm
}

// TimberBar represents a purchasable timber bar for cutting studs.
type TimberBar struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LengthMm float64 `json:"length_mm"`
	Price    float64 `json:"price"`
	Species  string  `json:"species"`
}

// NewTimberBar creates a new TimberBar with a generated ID.
func NewTimberBar(name string, lengthMm, price float64, species string) TimberBar {
	return TimberBar{
		ID:       uuid.New().String()[:8],
		Name:     name,
		LengthMm: lengthMm,
		Price:    price,
		Species:  species,
	}
}

// Inventory holds the user's saved stud profiles and timber bars.
type Inventory struct {
	Studs []StudProfile `json:"studs"`
	Bars  []TimberBar   `json:"bars"`
}

// DefaultInventory returns an inventory populated with common defaults.
func DefaultInventory() Inventory {
	return Inventory{
		Studs: []StudProfile{
			NewStudProfile("58x495 standard", 58, 495, 95),
			NewStudProfile("60x500 heavy", 60, 500, 100),
			NewStudProfile("45x330 partition", 45, 330, 60),
		},
		Bars: []TimberBar{
			NewTimberBar("Spruce 3000", 3000, 8.50, "Spruce"),
			NewTimberBar("Spruce 4000", 4000, 11.20, "Spruce"),
			NewTimberBar("Larch 3000", 3000, 14.00, "Larch"),
			NewTimberBar("Douglas 5000", 5000, 19.80, "Douglas Fir"),
		},
	}
}

// FindStudByID returns a pointer to the stud profile with the given ID, or nil.
func (inv *Inventory) FindStudByID(id string) *StudProfile {
	for i := range inv.Studs {
		if inv.Studs[i].ID == id {
			return &inv.Studs[i]
		}
	}
	return nil
}

// FindBarByID returns a pointer to the timber bar with the given ID, or nil.
func (inv *Inventory) FindBarByID(id string) *TimberBar {
	for i := range inv.Bars {
		if inv.Bars[i].ID == id {
			return &inv.Bars[i]
		}
	}
	return nil
}

// FindStudByName returns a pointer to the first stud profile with the given name, or nil.
func (inv *Inventory) FindStudByName(name string) *StudProfile {
	for i := range inv.Studs {
		if inv.Studs[i].Name == name {
			return &inv.Studs[i]
		}
	}
	return nil
}

// FindBarByName returns a pointer to the first timber bar with the given name, or nil.
func (inv *Inventory) FindBarByName(name string) *TimberBar {
	for i := range inv.Bars {
		if inv.Bars[i].Name == name {
			return &inv.Bars[i]
		}
	}
	return nil
}

// StudNames returns a list of stud profile names for selection prompts.
func (inv *Inventory) StudNames() []string {
	names := make([]string, len(inv.Studs))
	for i, s := range inv.Studs {
		names[i] = s.Name
	}
	return names
}

// BarNames returns a list of timber bar names for selection prompts.
func (inv *Inventory) BarNames() []string {
	names := make([]string, len(inv.Bars))
	for i, b := range inv.Bars {
		names[i] = b.Name
	}
	return names
}
