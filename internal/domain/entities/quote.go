package entities

// ServiceType is the service the visitor is asking about.

type ServiceType string

const (
	ServiceTypeQuoteEquipment ServiceType = "quote_equipment"
	ServiceTypeInstallOnly    ServiceType = "install_only"
	ServiceTypeMaintenance    ServiceType = "maintenance"
	ServiceTypeRepair         ServiceType = "repair"
	ServiceTypeOther          ServiceType = "other"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeQuoteEquipment, ServiceTypeInstallOnly, ServiceTypeMaintenance, ServiceTypeRepair, ServiceTypeOther:
		return true
	}
	return false
}

// SubmissionState is the external-handoff lifecycle. Only idle permits a new
// submission to start.

type SubmissionState string

const (
	SubmissionStateIdle    SubmissionState = "idle"
	SubmissionStateSending SubmissionState = "sending"
	SubmissionStateSent    SubmissionState = "sent"
)

// QuoteRequest is the contact form state for one UI session. It is mutated
// only through the named transition functions below so the cascading-reset
// rules stay in one place:
//   - leaving maintenance clears capacity range and plan tier
//   - changing the capacity range clears the plan tier
//
// Both rules exist to never pair a plan/price with a range the visitor no
// longer has selected.
type QuoteRequest struct {
	ServiceType   ServiceType `json:"service_type,omitempty"`
	CapacityRange string      `json:"capacity_range,omitempty"`
	PlanTier      PlanTier    `json:"plan_tier,omitempty"`
	ContactName   string      `json:"contact_name,omitempty"`
	ContactPhone  string      `json:"contact_phone,omitempty"`
	ContactEmail  string      `json:"contact_email,omitempty"`
	Message       string      `json:"message,omitempty"`
}

func (q *QuoteRequest) SetServiceType(s ServiceType) {
	if s != ServiceTypeMaintenance {
		q.CapacityRange = ""
		q.PlanTier = ""
	}
	q.ServiceType = s
}

func (q *QuoteRequest) SetCapacityRange(r string) {
	if q.CapacityRange != r {
		q.PlanTier = ""
	}
	q.CapacityRange = r
}

func (q *QuoteRequest) SetPlanTier(p PlanTier) {
	q.PlanTier = p
}

func (q *QuoteRequest) SetContactName(v string)  { q.ContactName = v }
func (q *QuoteRequest) SetContactPhone(v string) { q.ContactPhone = v }
func (q *QuoteRequest) SetContactEmail(v string) { q.ContactEmail = v }
func (q *QuoteRequest) SetMessage(v string)      { q.Message = v }

// Reset clears every field, used after a successful handoff settles.
func (q *QuoteRequest) Reset() {
	*q = QuoteRequest{}
}
