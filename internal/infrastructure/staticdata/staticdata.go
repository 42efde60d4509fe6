package staticdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"clima_hogar/internal/domain/entities"
)

// Package staticdata ships the pure-data tables the catalog and quote flows
// consult: the fallback equipment set, the brand/type/capacity image table
// and the maintenance pricing grid. They are versioned configuration, not
// logic; editing the JSON under data/ is the supported way to change them.

//go:embed data/*.json
var dataFS embed.FS

var (
	once            sync.Once
	fallbackCatalog []entities.EquipmentItem
	equipmentImages map[string][]string
	pricing         entities.MaintenancePricing
)

func load() {
	fallbackCatalog = mustDecode[[]entities.EquipmentItem]("data/fallback_catalog.json")
	equipmentImages = mustDecode[map[string][]string]("data/equipment_images.json")
	pricing = mustDecode[entities.MaintenancePricing]("data/maintenance_pricing.json")
}

func mustDecode[T any](name string) T {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("staticdata: reading %s: %v", name, err))
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("staticdata: decoding %s: %v", name, err))
	}
	return out
}

// FallbackCatalog returns the built-in equipment set substituted when the
// live inventory source is unreachable.
func FallbackCatalog() []entities.EquipmentItem {
	once.Do(load)
	items := make([]entities.EquipmentItem, len(fallbackCatalog))
	copy(items, fallbackCatalog)
	return items
}

// EquipmentImages returns the gallery lookup table keyed by
// brand-typeKey-capacity.
func EquipmentImages() map[string][]string {
	once.Do(load)
	return equipmentImages
}

// MaintenancePricing returns the capacity-range pricing grid.
func MaintenancePricing() entities.MaintenancePricing {
	once.Do(load)
	return pricing
}
