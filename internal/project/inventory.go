package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mverdi/wallplan/internal/model"
)

// DefaultInventoryPath returns the default file path for the inventory
// file, ~/.wallplan/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "inventory.json")
}

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInventory reads the inventory from the specified JSON file.
// If the file does not exist, it returns the default inventory and saves it.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

// ImportInventory imports an inventory from a user-specified JSON file,
// merging it with the existing inventory. Duplicate IDs are skipped.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Inventory
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	studIDs := make(map[string]bool, len(existing.Studs))
	for _, s := range existing.Studs {
		studIDs[s.ID] = true
	}
	barIDs := make(map[string]bool, len(existing.Bars))
	for _, b := range existing.Bars {
		barIDs[b.ID] = true
	}

	for _, s := range imported.Studs {
		if !studIDs[s.ID] {
			existing.Studs = append(existing.Studs, s)
			studIDs[s.ID] = true
		}
	}
	for _, b := range imported.Bars {
		if !barIDs[b.ID] {
			existing.Bars = append(existing.Bars, b)
			barIDs[b.ID] = true
		}
	}

	return existing, nil
}
