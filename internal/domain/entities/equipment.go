package entities

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// EquipmentType classifies a catalog item. Raw inventory records carry
// free-text types ("Split Muro", "Ventana compacto", ...); normalization maps
// them onto this closed set.

type EquipmentType string

const (
	EquipmentTypeSplit    EquipmentType = "split"
	EquipmentTypeWindow   EquipmentType = "window"
	EquipmentTypeCassette EquipmentType = "cassette"
	EquipmentTypePortable EquipmentType = "portable"
	EquipmentTypeOther    EquipmentType = "other"
)

// ClassifyEquipmentType maps a raw inventory type string onto the closed set
// by substring match.
func ClassifyEquipmentType(raw string) EquipmentType {
	t := strings.ToLower(raw)
	switch {
	case strings.Contains(t, "ventana"), strings.Contains(t, "window"):
		return EquipmentTypeWindow
	case strings.Contains(t, "cassette"), strings.Contains(t, "casete"):
		return EquipmentTypeCassette
	case strings.Contains(t, "portatil"), strings.Contains(t, "portátil"), strings.Contains(t, "portable"):
		return EquipmentTypePortable
	case strings.Contains(t, "split"):
		return EquipmentTypeSplit
	default:
		return EquipmentTypeOther
	}
}

// EquipmentItem is a normalized catalog entry. Items are immutable after
// normalization and owned by the catalog for the lifetime of the process.
//
// Monetary representation:
//   - ClientPrice is CLP, which has no minor unit, so plain integers.
type EquipmentItem struct {
	ID           string        `json:"id"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Type         EquipmentType `json:"type"`
	CapacityBTU  int           `json:"capacity_btu"`
	Refrigerant  string        `json:"refrigerant"`
	AreaCoverage string        `json:"area_coverage,omitempty"`
	ClientPrice  int           `json:"client_price"`
	Stock        int           `json:"stock"`
}

// GalleryKey derives the image-table lookup key brand-typeKey-capacity.
// The brand is lowercased with whitespace stripped; the type key collapses to
// {ventana, cassette, split}, defaulting to split.
func (i EquipmentItem) GalleryKey() string {
	var b strings.Builder
	for _, r := range strings.ToLower(i.Brand) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	b.WriteByte('-')
	b.WriteString(i.imageTypeKey())
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(i.CapacityBTU))
	return b.String()
}

func (i EquipmentItem) imageTypeKey() string {
	switch i.Type {
	case EquipmentTypeWindow:
		return "ventana"
	case EquipmentTypeCassette:
		return "cassette"
	default:
		return "split"
	}
}

// Catalog holds the normalized items for the current process. Errored marks
// that the live inventory could not be used and the fallback set was
// substituted instead.
type Catalog struct {
	Items   []EquipmentItem `json:"items"`
	Errored bool            `json:"errored"`
}

// InventoryRecord mirrors one element of GET /api/inventario/public. The
// endpoint is maintained elsewhere and has grown duplicate fields over time
// (capacidad vs capacidadBTU, precioCliente vs precioClienteIVA); the record
// keeps both spellings and normalization picks a winner.
type InventoryRecord struct {
	ID              json.Number `json:"id"`
	Tipo            string      `json:"tipo"`
	Marca           string      `json:"marca"`
	Modelo          string      `json:"modelo"`
	Capacidad       string      `json:"capacidad"`
	CapacidadBTU    int         `json:"capacidadBTU"`
	TipoGas         string      `json:"tipoGas"`
	MetrosCuadrados string      `json:"metrosCuadrados"`
	PrecioCliente   int         `json:"precioCliente"`
	PrecioClienteIVA int        `json:"precioClienteIVA"`
	Stock           int         `json:"stock"`
}
