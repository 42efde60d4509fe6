package staticdata

import (
	"testing"

	"clima_hogar/internal/domain/entities"
)

func TestFallbackCatalog(t *testing.T) {
	items := FallbackCatalog()
	if len(items) != 6 {
		t.Fatalf("expected 6 fallback items, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == "" || item.Brand == "" || item.Model == "" {
			t.Fatalf("incomplete fallback item: %+v", item)
		}
		if item.ClientPrice <= 0 {
			t.Fatalf("fallback item without a price: %+v", item)
		}
	}

	// Callers get a copy, not the backing slice.
	items[0].Brand = "mutated"
	if FallbackCatalog()[0].Brand == "mutated" {
		t.Fatalf("fallback catalog must not be mutable through the returned slice")
	}
}

func TestEquipmentImages(t *testing.T) {
	images := EquipmentImages()
	if len(images) == 0 {
		t.Fatalf("expected image table entries")
	}
	anwo, ok := images["anwo-split-9000"]
	if !ok || len(anwo) != 3 {
		t.Fatalf("expected 3 images for anwo-split-9000, got %v", anwo)
	}
	if _, ok := images["samsung-split-18000"]; ok {
		t.Fatalf("samsung-split-18000 must stay absent so the no-image path is reachable")
	}
}

func TestMaintenancePricing(t *testing.T) {
	pricing := MaintenancePricing()

	plan, ok := pricing["9000-12000"]
	if !ok {
		t.Fatalf("expected 9000-12000 range")
	}
	if plan.Label != "9.000 - 12.000 BTU" {
		t.Fatalf("unexpected label: %q", plan.Label)
	}
	if price, ok := plan.Price(entities.PlanTierPremium); !ok || price != 55000 {
		t.Fatalf("expected premium 55000, got %d ok=%v", price, ok)
	}

	// The largest range publishes no basic-tier price.
	large, ok := pricing["30000-60000"]
	if !ok {
		t.Fatalf("expected 30000-60000 range")
	}
	if _, ok := large.Price(entities.PlanTierBasico); ok {
		t.Fatalf("30000-60000 basico price must be unpublished")
	}
}
