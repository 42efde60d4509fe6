package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"clima_hogar/internal/domain/entities"
	"clima_hogar/internal/usecase/interfaces"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrItemNotFound = errors.New("catalog item not found")
)

// DefaultPageSize is the initial catalog page; "load more" only grows it.
const DefaultPageSize = 6

// FilterAll passes every item through the category filter.
const FilterAll = "all"

// ICatalogUseCase is the equipment catalog pipeline: fetch + normalize with
// fallback-on-failure, filter/sort/paginate, and image resolution.
//
// The catalog is loaded once per process and read thereafter. Presentation is
// best-effort: a dead inventory source degrades to the built-in fallback set,
// never to an empty or failing page.

type ICatalogUseCase interface {
	Load(ctx context.Context) (entities.Catalog, error)
	View(ctx context.Context, filter string, pageSize int) ([]entities.EquipmentItem, bool, error)
	FilterOptions(ctx context.Context) ([]string, error)
	ItemByID(ctx context.Context, id string) (entities.EquipmentItem, error)
	ImagesFor(item entities.EquipmentItem) []string
	FirstImage(item entities.EquipmentItem) (string, bool)
}

type CatalogUseCase struct {
	source   interfaces.IInventorySource
	fallback []entities.EquipmentItem
	images   map[string][]string

	mu      sync.Mutex
	loaded  bool
	catalog entities.Catalog

	collator *collate.Collator
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.IInventorySource, fallback []entities.EquipmentItem, images map[string][]string) *CatalogUseCase {
	return &CatalogUseCase{
		source:   source,
		fallback: fallback,
		images:   images,
		collator: collate.New(language.Spanish),
	}
}

// Load fetches and normalizes the inventory. Failures are not propagated as
// fatal: the fallback set is substituted and Errored marks the condition.
func (u *CatalogUseCase) Load(ctx context.Context) (entities.Catalog, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.loaded {
		return u.catalog, nil
	}

	records, err := u.source.FetchInventory(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] inventory fetch failed, serving fallback err=%v", err)
		u.catalog = entities.Catalog{Items: u.fallbackItems(), Errored: true}
		u.loaded = true
		return u.catalog, nil
	}

	items := make([]entities.EquipmentItem, 0, len(records))
	for _, rec := range records {
		items = append(items, normalizeRecord(rec))
	}
	log.Printf("[catalog][usecase] inventory loaded records=%d", len(items))

	u.catalog = entities.Catalog{Items: items}
	u.loaded = true
	return u.catalog, nil
}

func (u *CatalogUseCase) fallbackItems() []entities.EquipmentItem {
	items := make([]entities.EquipmentItem, len(u.fallback))
	copy(items, u.fallback)
	return items
}

func normalizeRecord(rec entities.InventoryRecord) entities.EquipmentItem {
	capacity := rec.CapacidadBTU
	if capacity <= 0 {
		capacity = firstInt(rec.Capacidad)
	}
	price := rec.PrecioClienteIVA
	if price <= 0 {
		price = rec.PrecioCliente
	}
	stock := rec.Stock
	if stock < 0 {
		stock = 0
	}
	return entities.EquipmentItem{
		ID:           rec.ID.String(),
		Brand:        strings.TrimSpace(rec.Marca),
		Model:        strings.TrimSpace(rec.Modelo),
		Type:         entities.ClassifyEquipmentType(rec.Tipo),
		CapacityBTU:  capacity,
		Refrigerant:  strings.TrimSpace(rec.TipoGas),
		AreaCoverage: strings.TrimSpace(rec.MetrosCuadrados),
		ClientPrice:  price,
		Stock:        stock,
	}
}

// firstInt extracts the first run of digits from free text ("12000 BTU" ->
// 12000). Unparsable values default to 0, which can only miss in the image
// table, never match a wrong entry.
func firstInt(s string) int {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}

// View derives the visible catalog subset: exact-match category filter,
// brand-then-capacity sort, prefix cursor of pageSize items. The bool result
// is the catalog's Errored flag so callers can show a degraded-data notice.
func (u *CatalogUseCase) View(ctx context.Context, filter string, pageSize int) ([]entities.EquipmentItem, bool, error) {
	catalog, err := u.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := make([]entities.EquipmentItem, 0, len(catalog.Items))
	for _, item := range catalog.Items {
		if filter == FilterAll || filter == "" || string(item.Type) == filter {
			filtered = append(filtered, item)
		}
	}

	// Two-level order is a firm contract: brand ascending under the Spanish
	// collator, ties broken by capacity ascending. Ties are never left in
	// source order.
	sort.SliceStable(filtered, func(i, j int) bool {
		if c := u.collator.CompareString(filtered[i].Brand, filtered[j].Brand); c != 0 {
			return c < 0
		}
		return filtered[i].CapacityBTU < filtered[j].CapacityBTU
	})

	if len(filtered) > pageSize {
		filtered = filtered[:pageSize]
	}
	return filtered, catalog.Errored, nil
}

// FilterOptions returns {"all"} plus the distinct types observed in the
// catalog, in sorted order.
func (u *CatalogUseCase) FilterOptions(ctx context.Context) ([]string, error) {
	catalog, err := u.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	options := []string{FilterAll}
	for _, item := range catalog.Items {
		t := string(item.Type)
		if !seen[t] {
			seen[t] = true
			options = append(options, t)
		}
	}
	sort.Strings(options[1:])
	return options, nil
}

func (u *CatalogUseCase) ItemByID(ctx context.Context, id string) (entities.EquipmentItem, error) {
	catalog, err := u.Load(ctx)
	if err != nil {
		return entities.EquipmentItem{}, err
	}
	for _, item := range catalog.Items {
		if item.ID == id {
			return item, nil
		}
	}
	return entities.EquipmentItem{}, ErrItemNotFound
}

// ImagesFor resolves the item's gallery from the static table. A miss is a
// defined non-error state; the UI omits the zoom affordance.
func (u *CatalogUseCase) ImagesFor(item entities.EquipmentItem) []string {
	return u.images[item.GalleryKey()]
}

// FirstImage returns the representative image when the gallery is non-empty.
func (u *CatalogUseCase) FirstImage(item entities.EquipmentItem) (string, bool) {
	imgs := u.ImagesFor(item)
	if len(imgs) == 0 {
		return "", false
	}
	return imgs[0], true
}
