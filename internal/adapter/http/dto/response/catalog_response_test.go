package response

import (
	"testing"

	"clima_hogar/internal/domain/entities"
)

func TestFromEquipmentItem(t *testing.T) {
	item := entities.EquipmentItem{
		ID:          "fb-anwo-9000",
		Brand:       "Anwo",
		Model:       "GES-9ECO",
		Type:        entities.EquipmentTypeSplit,
		CapacityBTU: 9000,
		ClientPrice: 289990,
		Stock:       5,
	}

	res := FromEquipmentItem(item, []string{"/img/a1.webp"})
	if res.PriceDisplay != "$289.990" {
		t.Fatalf("unexpected price display: %q", res.PriceDisplay)
	}
	if !res.HasImages || len(res.Images) != 1 {
		t.Fatalf("unexpected images: %+v", res)
	}
	if res.Type != "split" {
		t.Fatalf("unexpected type: %q", res.Type)
	}

	// nil images must serialize as [] rather than null.
	bare := FromEquipmentItem(item, nil)
	if bare.Images == nil || bare.HasImages {
		t.Fatalf("expected empty image slice, got %+v", bare)
	}
}

func TestFromCatalogView(t *testing.T) {
	res := FromCatalogView([]CatalogItemResponse{{ID: "a"}, {ID: "b"}}, "split", 6, true)
	if res.Count != 2 || res.Filter != "split" || res.PageSize != 6 || !res.Errored {
		t.Fatalf("unexpected view: %+v", res)
	}
}
