package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"clima_hogar/internal/domain/entities"
)

var (
	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrInvalidPlanTier      = errors.New("invalid plan tier")
	ErrInvalidEquipmentInfo = errors.New("invalid equipment reference")
)

var serviceLabels = map[entities.ServiceType]string{
	entities.ServiceTypeQuoteEquipment: "Cotización de equipo",
	entities.ServiceTypeInstallOnly:    "Instalación de equipo",
	entities.ServiceTypeMaintenance:    "Mantención de equipo",
	entities.ServiceTypeRepair:         "Reparación de equipo",
	entities.ServiceTypeOther:          "Otro servicio",
}

var genericDescriptions = map[entities.ServiceType]string{
	entities.ServiceTypeQuoteEquipment: "Necesito cotizar un equipo de aire acondicionado.",
	entities.ServiceTypeInstallOnly:    "Necesito instalar un equipo adquirido por mi cuenta.",
	entities.ServiceTypeMaintenance:    "Necesito una mantención para mi equipo de aire acondicionado.",
	entities.ServiceTypeRepair:         "Mi equipo presenta fallas y necesito una revisión técnica.",
	entities.ServiceTypeOther:          "Tengo otra consulta.",
}

// QuoteMessage is the composed handoff text for both channels.
type QuoteMessage struct {
	WhatsAppText string
	EmailSubject string
	EmailBody    string
}

// QuoteUpdate carries the form fields a PATCH wants to change. Nil means
// "leave untouched"; each set field goes through its named transition so the
// cascading resets always apply.
type QuoteUpdate struct {
	ServiceType   *string
	CapacityRange *string
	PlanTier      *string
	ContactName   *string
	ContactPhone  *string
	ContactEmail  *string
	Message       *string
}

// EquipmentReference is the inbound equipment-quote-request signal from the
// catalog detail view.
type EquipmentReference struct {
	Marca     string
	Modelo    string
	Capacidad string
	Precio    int
}

// IQuoteUseCase owns the quote form state and the message composer.

type IQuoteUseCase interface {
	Update(ctx context.Context, sessionID string, upd QuoteUpdate) (entities.QuoteRequest, error)
	ApplyEquipmentReference(ctx context.Context, sessionID string, ref EquipmentReference) (entities.QuoteRequest, error)
	Compose(ctx context.Context, sessionID string) (QuoteMessage, error)
	Get(ctx context.Context, sessionID string) (entities.QuoteRequest, error)
}

type QuoteUseCase struct {
	registry *SessionRegistry
	pricing  entities.MaintenancePricing
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(registry *SessionRegistry, pricing entities.MaintenancePricing) *QuoteUseCase {
	return &QuoteUseCase{registry: registry, pricing: pricing}
}

func (u *QuoteUseCase) Update(ctx context.Context, sessionID string, upd QuoteUpdate) (entities.QuoteRequest, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return entities.QuoteRequest{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.ServiceType != nil {
		st := entities.ServiceType(strings.TrimSpace(*upd.ServiceType))
		if st != "" && !st.Valid() {
			return entities.QuoteRequest{}, ErrInvalidServiceType
		}
		s.Quote.SetServiceType(st)
	}
	if upd.CapacityRange != nil {
		s.Quote.SetCapacityRange(strings.TrimSpace(*upd.CapacityRange))
	}
	if upd.PlanTier != nil {
		pt := entities.PlanTier(strings.TrimSpace(*upd.PlanTier))
		if pt != "" && !pt.Valid() {
			return entities.QuoteRequest{}, ErrInvalidPlanTier
		}
		s.Quote.SetPlanTier(pt)
	}
	if upd.ContactName != nil {
		s.Quote.SetContactName(strings.TrimSpace(*upd.ContactName))
	}
	if upd.ContactPhone != nil {
		s.Quote.SetContactPhone(strings.TrimSpace(*upd.ContactPhone))
	}
	if upd.ContactEmail != nil {
		s.Quote.SetContactEmail(strings.TrimSpace(*upd.ContactEmail))
	}
	if upd.Message != nil {
		s.Quote.SetMessage(strings.TrimSpace(*upd.Message))
	}
	return s.Quote, nil
}

// ApplyEquipmentReference pre-fills the form from a catalog detail request:
// service becomes quote_equipment and the message carries a one-line
// reference to the published equipment.
func (u *QuoteUseCase) ApplyEquipmentReference(ctx context.Context, sessionID string, ref EquipmentReference) (entities.QuoteRequest, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return entities.QuoteRequest{}, ErrSessionNotFound
	}

	marca := strings.TrimSpace(ref.Marca)
	modelo := strings.TrimSpace(ref.Modelo)
	if marca == "" || modelo == "" {
		return entities.QuoteRequest{}, ErrInvalidEquipmentInfo
	}

	line := fmt.Sprintf("Quiero cotizar el equipo %s %s", marca, modelo)
	if capacity := normalizeCapacity(ref.Capacidad); capacity != "" {
		line += fmt.Sprintf(" (%s BTU)", capacity)
	}
	if ref.Precio > 0 {
		line += fmt.Sprintf(" publicado a %s", entities.FormatCLP(ref.Precio))
	}
	line += "."

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Quote.SetServiceType(entities.ServiceTypeQuoteEquipment)
	s.Quote.SetMessage(line)
	log.Printf("[quote][usecase] equipment reference applied session_id=%s marca=%s modelo=%s", sessionID, marca, modelo)
	return s.Quote, nil
}

// normalizeCapacity strips a trailing "BTU" unit marker so the reference line
// never reads "12000 BTU BTU".
func normalizeCapacity(raw string) string {
	c := strings.TrimSpace(raw)
	upper := strings.ToUpper(c)
	if strings.HasSuffix(upper, "BTU") {
		c = strings.TrimSpace(c[:len(c)-len("BTU")])
	}
	return c
}

func (u *QuoteUseCase) Compose(ctx context.Context, sessionID string) (QuoteMessage, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return QuoteMessage{}, ErrSessionNotFound
	}
	s.mu.Lock()
	q := s.Quote
	s.mu.Unlock()
	return ComposeQuoteMessage(q, u.pricing), nil
}

func (u *QuoteUseCase) Get(ctx context.Context, sessionID string) (entities.QuoteRequest, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return entities.QuoteRequest{}, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Quote, nil
}

// ComposeQuoteMessage builds the WhatsApp text and the email subject/body
// from the form state. Pure; the handoff state machine reuses it.
func ComposeQuoteMessage(q entities.QuoteRequest, pricing entities.MaintenancePricing) QuoteMessage {
	label := serviceLabels[q.ServiceType]
	description := resolveDescription(q, pricing)

	var b strings.Builder
	b.WriteString("¡Hola! Les escribo desde la página web.\n\n")
	b.WriteString("Nombre: " + q.ContactName + "\n")
	b.WriteString("Teléfono: " + q.ContactPhone + "\n")
	b.WriteString("Email: " + q.ContactEmail + "\n")
	if label != "" {
		b.WriteString("Servicio: " + label + "\n")
	}
	if description != "" {
		b.WriteString("\nMotivo de contacto:\n" + description + "\n")
	}
	if q.Message != "" {
		b.WriteString("\nMensaje:\n" + q.Message + "\n")
	}

	subject := "Contacto Web - Consulta general"
	if label != "" {
		subject = "Contacto Web - " + label
	}

	body := strings.Join([]string{
		"Nombre: " + orDefault(q.ContactName, "No especificado"),
		"Teléfono: " + orDefault(q.ContactPhone, "No especificado"),
		"Email: " + orDefault(q.ContactEmail, "No especificado"),
		"Servicio: " + orDefault(label, "No especificado"),
		"Motivo de contacto: " + orDefault(description, "No especificado"),
		"Mensaje: " + orDefault(q.Message, "Sin mensaje adicional"),
	}, "\n")

	return QuoteMessage{
		WhatsAppText: b.String(),
		EmailSubject: subject,
		EmailBody:    body,
	}
}

// resolveDescription picks the maintenance pricing sentence when range and
// tier are both chosen and the range exists in the table; otherwise the
// generic per-service description. A missing (range, tier) price silently
// omits the price clause; a number is never fabricated.
func resolveDescription(q entities.QuoteRequest, pricing entities.MaintenancePricing) string {
	if q.ServiceType == entities.ServiceTypeMaintenance && q.CapacityRange != "" && q.PlanTier != "" {
		if plan, ok := pricing[q.CapacityRange]; ok {
			desc := fmt.Sprintf("Me interesa el %s de mantención para un equipo de %s.", q.PlanTier.Label(), plan.Label)
			if price, ok := plan.Price(q.PlanTier); ok {
				desc += fmt.Sprintf(" Precio referencial desde %s.", entities.FormatCLP(price))
			}
			return desc
		}
	}
	return genericDescriptions[q.ServiceType]
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
