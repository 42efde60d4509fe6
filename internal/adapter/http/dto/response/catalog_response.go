package response

import (
	"clima_hogar/internal/domain/entities"
)

type CatalogItemResponse struct {
	ID           string   `json:"id"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Type         string   `json:"type"`
	CapacityBTU  int      `json:"capacity_btu"`
	Refrigerant  string   `json:"refrigerant"`
	AreaCoverage string   `json:"area_coverage,omitempty"`
	ClientPrice  int      `json:"client_price"`
	PriceDisplay string   `json:"price_display"`
	Stock        int      `json:"stock"`
	Images       []string `json:"images"`
	HasImages    bool     `json:"has_images"`
}

func FromEquipmentItem(item entities.EquipmentItem, images []string) CatalogItemResponse {
	if images == nil {
		images = []string{}
	}
	return CatalogItemResponse{
		ID:           item.ID,
		Brand:        item.Brand,
		Model:        item.Model,
		Type:         string(item.Type),
		CapacityBTU:  item.CapacityBTU,
		Refrigerant:  item.Refrigerant,
		AreaCoverage: item.AreaCoverage,
		ClientPrice:  item.ClientPrice,
		PriceDisplay: entities.FormatCLP(item.ClientPrice),
		Stock:        item.Stock,
		Images:       images,
		HasImages:    len(images) > 0,
	}
}

type CatalogViewResponse struct {
	Items    []CatalogItemResponse `json:"items"`
	Count    int                   `json:"count"`
	Filter   string                `json:"filter"`
	PageSize int                   `json:"page_size"`
	Errored  bool                  `json:"errored"`
}

func FromCatalogView(items []CatalogItemResponse, filter string, pageSize int, errored bool) CatalogViewResponse {
	return CatalogViewResponse{
		Items:    items,
		Count:    len(items),
		Filter:   filter,
		PageSize: pageSize,
		Errored:  errored,
	}
}

type FilterOptionsResponse struct {
	Options []string `json:"options"`
}
