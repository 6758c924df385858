package services

import (
	"testing"

	"amstudio-backend/models"
)

func testLocation() models.Location {
	return models.Location{ID: "tainan", Name: "Tainan Studio"}
}

func TestBuildGroupPayloads_SharedGroupAndIndexes(t *testing.T) {
	guests := []Guest{
		{Name: "Amy", Phone: "0911222333", Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}},
		{Name: "Mei", Phone: "0922333444", Services: []models.Service{svc(models.CategoryBrow, models.TypeTouchUp, 2000, 90)}},
	}
	guestTimes := map[int]string{0: "11:00", 1: "13:00"}

	payloads := BuildGroupPayloads(guests, guestTimes, "", testLocation(), "2026-09-01", "user-1")
	if len(payloads) != 2 {
		t.Fatalf("expected 2 records, got %d", len(payloads))
	}

	if payloads[0].GroupID == "" || payloads[0].GroupID != payloads[1].GroupID {
		t.Fatal("all records of one submission must share a group identifier")
	}
	for i, p := range payloads {
		if p.GuestIndex != i+1 {
			t.Fatalf("record %d: expected 1-based guest index %d, got %d", i, i+1, p.GuestIndex)
		}
		if p.Status != models.StatusPending {
			t.Fatalf("record %d: expected pending status, got %q", i, p.Status)
		}
	}
}

func TestBuildGroupPayloads_PaymentStatusFollowsDeposit(t *testing.T) {
	guests := []Guest{
		{Name: "Amy", Phone: "0911222333", Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}},
		{Name: "Mei", Phone: "0922333444", Services: []models.Service{svc(models.CategoryBrow, models.TypeTouchUp, 2000, 90)}},
	}
	guestTimes := map[int]string{0: "11:00", 1: "13:00"}

	payloads := BuildGroupPayloads(guests, guestTimes, "", testLocation(), "2026-09-01", "user-1")

	if payloads[0].Deposit != DepositPerGuest || payloads[0].PaymentStatus != models.PaymentUnpaid {
		t.Fatalf("first-time guest: expected unpaid deposit, got %+v", payloads[0])
	}
	if payloads[1].Deposit != 0 || payloads[1].PaymentStatus != models.PaymentVerified {
		t.Fatalf("touch-up guest: nothing to collect, expected verified, got %+v", payloads[1])
	}
}

func TestBuildGroupPayloads_CustomTimeSubstitution(t *testing.T) {
	guests := []Guest{
		{Name: "Amy", Phone: "0911222333", Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}},
	}
	guestTimes := map[int]string{0: "custom"}

	payloads := BuildGroupPayloads(guests, guestTimes, "14:30", testLocation(), "2026-09-01", "user-1")
	if payloads[0].Time != "custom 14:30" {
		t.Fatalf("expected negotiated custom time, got %q", payloads[0].Time)
	}
}

func TestBuildGroupPayloads_ServiceFields(t *testing.T) {
	brow := svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)
	lip := svc(models.CategoryLip, models.TypeFirstTime, 8000, 150)
	guests := []Guest{
		{Name: "Amy", Phone: "0911222333", Services: []models.Service{brow, lip}},
	}
	guestTimes := map[int]string{0: "11:00"}

	p := BuildGroupPayloads(guests, guestTimes, "", testLocation(), "2026-09-01", "user-1")[0]

	if len(p.ServiceIDs) != 2 {
		t.Fatalf("expected both service ids, got %v", p.ServiceIDs)
	}
	if p.ServiceName != brow.Name+" + "+lip.Name {
		t.Fatalf("unexpected joined service name %q", p.ServiceName)
	}
	if p.ServiceDuration != 240 {
		t.Fatalf("expected combined duration 240, got %d", p.ServiceDuration)
	}
	if p.TotalPrice != 6000+8000-ComboDiscount {
		t.Fatalf("expected priced total, got %d", p.TotalPrice)
	}
}
