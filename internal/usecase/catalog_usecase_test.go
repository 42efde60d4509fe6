package usecase

import (
	"context"
	"errors"
	"testing"

	"clima_hogar/internal/domain/entities"
	"clima_hogar/internal/infrastructure/staticdata"
	mock_interfaces "clima_hogar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testImages() map[string][]string {
	return map[string][]string{
		"anwo-split-9000":   {"/img/a1.webp", "/img/a2.webp", "/img/a3.webp"},
		"midea-split-12000": {"/img/m1.webp"},
	}
}

func TestCatalogUseCase_LoadFallbackOnFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockIInventorySource(ctrl)
	uc := NewCatalogUseCase(source, staticdata.FallbackCatalog(), testImages())

	source.EXPECT().FetchInventory(gomock.Any()).Return(nil, errors.New("connection refused"))

	catalog, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("fallback path must not surface an error, got %v", err)
	}
	if !catalog.Errored {
		t.Fatalf("expected errored flag")
	}
	if len(catalog.Items) != 6 {
		t.Fatalf("expected the 6-item fallback set, got %d", len(catalog.Items))
	}

	// Fallback is served from cache afterwards; the source is not retried.
	again, err := uc.Load(context.Background())
	if err != nil || len(again.Items) != 6 {
		t.Fatalf("expected cached fallback, got %d items err=%v", len(again.Items), err)
	}
}

func TestCatalogUseCase_ViewOnFallbackSortsBrandThenCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockIInventorySource(ctrl)
	uc := NewCatalogUseCase(source, staticdata.FallbackCatalog(), testImages())

	source.EXPECT().FetchInventory(gomock.Any()).Return(nil, errors.New("down"))

	items, errored, err := uc.View(context.Background(), FilterAll, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errored {
		t.Fatalf("expected errored flag on fallback view")
	}
	if len(items) != 6 {
		t.Fatalf("expected all 6 fallback items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]
		if a.Brand > b.Brand {
			t.Fatalf("brands out of order at %d: %q > %q", i, a.Brand, b.Brand)
		}
		if a.Brand == b.Brand && a.CapacityBTU > b.CapacityBTU {
			t.Fatalf("capacity tie-break violated at %d: %d > %d", i, a.CapacityBTU, b.CapacityBTU)
		}
	}
}

func TestCatalogUseCase_LoadNormalizesRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockIInventorySource(ctrl)
	uc := NewCatalogUseCase(source, nil, testImages())

	source.EXPECT().FetchInventory(gomock.Any()).Return([]entities.InventoryRecord{
		{
			ID:               "7",
			Tipo:             "Split Muro",
			Marca:            " Anwo ",
			Modelo:           "GES-9ECO",
			Capacidad:        "9000 BTU",
			TipoGas:          "R32",
			MetrosCuadrados:  "hasta 20 m²",
			PrecioCliente:    250000,
			PrecioClienteIVA: 289990,
			Stock:            5,
		},
		{
			ID:        "8",
			Tipo:      "Ventana",
			Marca:     "Kendal",
			Modelo:    "V12",
			Capacidad: "sin dato",
			Stock:     -2,
		},
	}, nil)

	catalog, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Errored {
		t.Fatalf("live load must not set errored")
	}

	first := catalog.Items[0]
	if first.ID != "7" || first.Brand != "Anwo" || first.Type != entities.EquipmentTypeSplit {
		t.Fatalf("unexpected normalization: %+v", first)
	}
	if first.CapacityBTU != 9000 {
		t.Fatalf("expected capacity parsed from text, got %d", first.CapacityBTU)
	}
	if first.ClientPrice != 289990 {
		t.Fatalf("expected IVA price preferred, got %d", first.ClientPrice)
	}

	second := catalog.Items[1]
	if second.Type != entities.EquipmentTypeWindow {
		t.Fatalf("expected window type, got %s", second.Type)
	}
	if second.CapacityBTU != 0 {
		t.Fatalf("unparsable capacity must default to 0, got %d", second.CapacityBTU)
	}
	if second.Stock != 0 {
		t.Fatalf("negative stock must clamp to 0, got %d", second.Stock)
	}
}

func TestCatalogUseCase_ViewFilterAndPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockIInventorySource(ctrl)
	uc := NewCatalogUseCase(source, staticdata.FallbackCatalog(), testImages())

	source.EXPECT().FetchInventory(gomock.Any()).Return(nil, errors.New("down"))

	t.Run("exact type filter", func(t *testing.T) {
		items, _, err := uc.View(context.Background(), "split", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 4 {
			t.Fatalf("expected 4 split items, got %d", len(items))
		}
		for _, item := range items {
			if item.Type != entities.EquipmentTypeSplit {
				t.Fatalf("filter leak: %+v", item)
			}
		}
	})

	t.Run("prefix cursor", func(t *testing.T) {
		all, _, _ := uc.View(context.Background(), FilterAll, 6)
		page, _, err := uc.View(context.Background(), FilterAll, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page) != 2 {
			t.Fatalf("expected 2 items, got %d", len(page))
		}
		if page[0].ID != all[0].ID || page[1].ID != all[1].ID {
			t.Fatalf("page must be a prefix of the full view")
		}
	})

	t.Run("non-positive page size defaults", func(t *testing.T) {
		page, _, err := uc.View(context.Background(), FilterAll, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page) != DefaultPageSize {
			t.Fatalf("expected default page of %d, got %d", DefaultPageSize, len(page))
		}
	})
}

func TestCatalogUseCase_FilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockIInventorySource(ctrl)
	uc := NewCatalogUseCase(source, staticdata.FallbackCatalog(), testImages())

	source.EXPECT().FetchInventory(gomock.Any()).Return(nil, errors.New("down"))

	options, err := uc.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"all", "cassette", "split", "window"}
	if len(options) != len(want) {
		t.Fatalf("expected %v, got %v", want, options)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, options)
		}
	}
}

func TestCatalogUseCase_ImageResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockIInventorySource(ctrl)
	uc := NewCatalogUseCase(source, staticdata.FallbackCatalog(), testImages())

	withImages := entities.EquipmentItem{Brand: "Anwo", Type: entities.EquipmentTypeSplit, CapacityBTU: 9000}
	if got := uc.ImagesFor(withImages); len(got) != 3 {
		t.Fatalf("expected 3 images, got %d", len(got))
	}
	if first, ok := uc.FirstImage(withImages); !ok || first != "/img/a1.webp" {
		t.Fatalf("unexpected first image: %q ok=%v", first, ok)
	}

	// A table miss is a defined non-error state.
	without := entities.EquipmentItem{Brand: "Samsung", Type: entities.EquipmentTypeSplit, CapacityBTU: 18000}
	if got := uc.ImagesFor(without); len(got) != 0 {
		t.Fatalf("expected no images, got %v", got)
	}
	if _, ok := uc.FirstImage(without); ok {
		t.Fatalf("expected no first image")
	}
}

func TestCatalogUseCase_ItemByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	source := mock_interfaces.NewMockIInventorySource(ctrl)
	uc := NewCatalogUseCase(source, staticdata.FallbackCatalog(), testImages())

	source.EXPECT().FetchInventory(gomock.Any()).Return(nil, errors.New("down"))

	item, err := uc.ItemByID(context.Background(), "fb-anwo-9000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Brand != "Anwo" || item.CapacityBTU != 9000 {
		t.Fatalf("unexpected item: %+v", item)
	}

	if _, err := uc.ItemByID(context.Background(), "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
