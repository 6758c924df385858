package services

import (
	"strings"
	"testing"

	"amstudio-backend/models"

	"github.com/google/uuid"
)

func TestPriceGuest_SingleFirstTimeService(t *testing.T) {
	g := Guest{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}}

	p := PriceGuest(g, false)
	if p.Subtotal != 6000 || p.AutoDiscount != 0 || p.Total != 6000 {
		t.Fatalf("unexpected pricing: %+v", p)
	}
	if p.Deposit != DepositPerGuest {
		t.Fatalf("first-time guest must owe the %d deposit, got %d", DepositPerGuest, p.Deposit)
	}
}

func TestPriceGuest_ComboRule(t *testing.T) {
	g := Guest{Services: []models.Service{
		svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120),
		svc(models.CategoryLip, models.TypeFirstTime, 8000, 150),
	}}

	p := PriceGuest(g, false)
	if p.AutoDiscount != ComboDiscount {
		t.Fatalf("expected combo discount %d, got %d", ComboDiscount, p.AutoDiscount)
	}
	if p.Total != 13600 {
		t.Fatalf("expected 6000+8000-400=13600, got %d", p.Total)
	}
}

func TestPriceGuest_ComboWinsRegardlessOfMode(t *testing.T) {
	// Brow-first + lip-first is always exactly 400 off: never 200+200,
	// never affected by multi-guest mode or a manual discount.
	g := Guest{
		Services: []models.Service{
			svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120),
			svc(models.CategoryLip, models.TypeFirstTime, 8000, 150),
		},
		Discount: &models.Discount{ID: uuid.New(), Name: "opening", Amount: 500},
	}

	p := PriceGuest(g, true)
	if p.AutoDiscount != ComboDiscount {
		t.Fatalf("expected combo discount %d, got %d", ComboDiscount, p.AutoDiscount)
	}
	if p.ManualDiscount != 500 {
		t.Fatalf("manual discount must stack, got %d", p.ManualDiscount)
	}
	if p.Total != 6000+8000-400-500 {
		t.Fatalf("expected 13100, got %d", p.Total)
	}
}

func TestPriceGuest_ReturnCustomerRule(t *testing.T) {
	g := Guest{Services: []models.Service{
		svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120),
		svc(models.CategoryLip, models.TypeTouchUp, 3000, 120),
	}}

	p := PriceGuest(g, false)
	if p.AutoDiscount != ReturnCustomerDiscount {
		t.Fatalf("expected return-customer discount %d, got %d", ReturnCustomerDiscount, p.AutoDiscount)
	}
}

func TestPriceGuest_MultiGuestRule(t *testing.T) {
	first := Guest{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}}
	touchupOnly := Guest{Services: []models.Service{svc(models.CategoryBrow, models.TypeTouchUp, 2000, 90)}}

	pA := PriceGuest(first, true)
	if pA.AutoDiscount != GroupDiscount {
		t.Fatalf("guest A: expected group discount %d, got %d", GroupDiscount, pA.AutoDiscount)
	}
	if pA.Deposit != DepositPerGuest {
		t.Fatalf("guest A owes a deposit, got %d", pA.Deposit)
	}

	pB := PriceGuest(touchupOnly, true)
	if pB.AutoDiscount != 0 {
		t.Fatalf("guest B: touch-up only gets no automatic discount, got %d", pB.AutoDiscount)
	}
	if pB.Deposit != 0 {
		t.Fatalf("guest B owes no deposit, got %d", pB.Deposit)
	}
}

func TestPriceGuest_NoGroupDiscountInSingleMode(t *testing.T) {
	g := Guest{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}}
	if p := PriceGuest(g, false); p.AutoDiscount != 0 {
		t.Fatalf("single-guest mode must not apply the group discount, got %d", p.AutoDiscount)
	}
}

func TestPriceGuest_TotalFlooredAtZero(t *testing.T) {
	g := Guest{
		Services: []models.Service{svc(models.CategoryBrow, models.TypeTouchUp, 100, 90)},
		Discount: &models.Discount{ID: uuid.New(), Name: "vip", Amount: 500},
	}
	if p := PriceGuest(g, false); p.Total != 0 {
		t.Fatalf("total must not go negative, got %d", p.Total)
	}
}

func TestGroupDeposit(t *testing.T) {
	guests := []Guest{
		{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}},
		{Services: []models.Service{svc(models.CategoryBrow, models.TypeTouchUp, 2000, 90)}},
		{Services: []models.Service{svc(models.CategoryLip, models.TypeFirstTime, 8000, 150)}},
	}
	if got := GroupDeposit(guests); got != 2*DepositPerGuest {
		t.Fatalf("expected deposit for the two first-time guests, got %d", got)
	}
}

func TestApplyDarkLip(t *testing.T) {
	lipFirst := svc(models.CategoryLip, models.TypeFirstTime, 8000, 150)
	got := ApplyDarkLip(lipFirst)
	if got.Price != 8000+DarkLipSurcharge {
		t.Fatalf("expected surcharge on lip first-time, got price %d", got.Price)
	}
	if !strings.Contains(got.Name, "dark lip") {
		t.Fatalf("expected annotated name, got %q", got.Name)
	}

	browFirst := svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)
	if got := ApplyDarkLip(browFirst); got.Price != 6000 {
		t.Fatalf("surcharge must only apply to first-time lip services, got %d", got.Price)
	}
}

func TestApplyDarkLip_DoesNotChangeDiscountTier(t *testing.T) {
	g := Guest{Services: []models.Service{
		svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120),
		ApplyDarkLip(svc(models.CategoryLip, models.TypeFirstTime, 8000, 150)),
	}}

	p := PriceGuest(g, false)
	if p.AutoDiscount != ComboDiscount {
		t.Fatalf("dark lip add-on must not change the discount tier, got %d", p.AutoDiscount)
	}
	if p.Subtotal != 6000+8000+DarkLipSurcharge {
		t.Fatalf("surcharge must be in the subtotal, got %d", p.Subtotal)
	}
}
