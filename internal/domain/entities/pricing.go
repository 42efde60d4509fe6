package entities

// PlanTier is one of the three maintenance service levels.

type PlanTier string

const (
	PlanTierPremium PlanTier = "premium"
	PlanTierFull    PlanTier = "full"
	PlanTierBasico  PlanTier = "basico"
)

func (p PlanTier) Valid() bool {
	switch p {
	case PlanTierPremium, PlanTierFull, PlanTierBasico:
		return true
	}
	return false
}

// Label returns the customer-facing plan name.
func (p PlanTier) Label() string {
	switch p {
	case PlanTierPremium:
		return "Plan Premium"
	case PlanTierFull:
		return "Plan Full"
	case PlanTierBasico:
		return "Plan Básico"
	}
	return ""
}

// MaintenancePlan is the pricing row for one capacity range. A tier may be
// absent from Prices; callers must treat that as "no published price", never
// as zero.
type MaintenancePlan struct {
	Label  string           `json:"label"`
	Prices map[PlanTier]int `json:"prices"`
}

// Price returns the CLP price for a tier when one is published.
func (m MaintenancePlan) Price(tier PlanTier) (int, bool) {
	v, ok := m.Prices[tier]
	return v, ok
}

// MaintenancePricing maps a capacity-range key ("9000-12000") to its plan
// row. Static, read-only, loaded once at startup.
type MaintenancePricing map[string]MaintenancePlan
