package request

import "strings"

// QuoteUpdateRequest is the PATCH payload for the quote form. Every field is
// optional; absent fields are left untouched so the client can drive the form
// field-by-field, reducer style.
type QuoteUpdateRequest struct {
	ServiceType   *string `json:"service_type"`
	CapacityRange *string `json:"capacity_range"`
	PlanTier      *string `json:"plan_tier"`
	ContactName   *string `json:"contact_name"`
	ContactPhone  *string `json:"contact_phone"`
	ContactEmail  *string `json:"contact_email"`
	Message       *string `json:"message"`
}

// IsEmpty reports whether the payload carries no transition at all.
func (r QuoteUpdateRequest) IsEmpty() bool {
	return r.ServiceType == nil && r.CapacityRange == nil && r.PlanTier == nil &&
		r.ContactName == nil && r.ContactPhone == nil && r.ContactEmail == nil &&
		r.Message == nil
}

// EquipmentReferenceRequest is the inbound equipment-quote-request payload
// emitted by the catalog detail collaborator. Field names match the signal's
// wire format.
type EquipmentReferenceRequest struct {
	Marca     string `json:"marca" binding:"required"`
	Modelo    string `json:"modelo" binding:"required"`
	Capacidad string `json:"capacidad"`
	Precio    int    `json:"precio"`
}

func (r EquipmentReferenceRequest) ResolveMarca() string {
	return strings.TrimSpace(r.Marca)
}

func (r EquipmentReferenceRequest) ResolveModelo() string {
	return strings.TrimSpace(r.Modelo)
}
