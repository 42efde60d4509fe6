package entities

import "testing"

func TestQuoteRequest_ServiceTypeChangeClearsMaintenanceFields(t *testing.T) {
	q := QuoteRequest{}
	q.SetServiceType(ServiceTypeMaintenance)
	q.SetCapacityRange("9000-12000")
	q.SetPlanTier(PlanTierPremium)

	for _, st := range []ServiceType{ServiceTypeQuoteEquipment, ServiceTypeInstallOnly, ServiceTypeRepair, ServiceTypeOther} {
		t.Run(string(st), func(t *testing.T) {
			q2 := q
			q2.SetServiceType(st)
			if q2.CapacityRange != "" || q2.PlanTier != "" {
				t.Fatalf("expected cleared maintenance fields, got range=%q tier=%q", q2.CapacityRange, q2.PlanTier)
			}
			if q2.ServiceType != st {
				t.Fatalf("expected service %s, got %s", st, q2.ServiceType)
			}
		})
	}

	t.Run("staying on maintenance keeps fields", func(t *testing.T) {
		q2 := q
		q2.SetServiceType(ServiceTypeMaintenance)
		if q2.CapacityRange != "9000-12000" || q2.PlanTier != PlanTierPremium {
			t.Fatalf("expected fields kept, got %+v", q2)
		}
	})
}

func TestQuoteRequest_CapacityRangeChangeClearsPlanTier(t *testing.T) {
	q := QuoteRequest{}
	q.SetServiceType(ServiceTypeMaintenance)
	q.SetCapacityRange("9000-12000")
	q.SetPlanTier(PlanTierFull)

	q.SetCapacityRange("18000-24000")
	if q.PlanTier != "" {
		t.Fatalf("expected cleared tier, got %q", q.PlanTier)
	}

	q.SetPlanTier(PlanTierBasico)
	q.SetCapacityRange("18000-24000")
	if q.PlanTier != PlanTierBasico {
		t.Fatalf("expected tier kept on same range, got %q", q.PlanTier)
	}
}

func TestQuoteRequest_Reset(t *testing.T) {
	q := QuoteRequest{
		ServiceType:  ServiceTypeRepair,
		ContactName:  "Ana",
		ContactPhone: "+56911111111",
		Message:      "hola",
	}
	q.Reset()
	if q != (QuoteRequest{}) {
		t.Fatalf("expected empty request, got %+v", q)
	}
}

func TestServiceTypeAndPlanTierValidity(t *testing.T) {
	if !ServiceTypeMaintenance.Valid() || ServiceType("bogus").Valid() {
		t.Fatalf("unexpected service type validity")
	}
	if !PlanTierBasico.Valid() || PlanTier("gold").Valid() {
		t.Fatalf("unexpected plan tier validity")
	}
}
