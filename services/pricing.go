// services/pricing.go
package services

import (
	"strings"

	"amstudio-backend/models"
)

// Discount and deposit amounts, NT$.
const (
	ComboDiscount          = 400  // first-time brow + first-time lip
	ReturnCustomerDiscount = 200  // any first-time + any touch-up
	GroupDiscount          = 200  // multi-guest submission with a first-time service
	DepositPerGuest        = 1000 // owed whenever a first-time service is selected
	DarkLipSurcharge       = 1300
)

// GuestPricing is the per-guest result of the pricing engine.
type GuestPricing struct {
	Subtotal       int
	ManualDiscount int
	AutoDiscount   int
	DiscountNote   string
	Total          int
	Deposit        int
}

// PriceGuest computes one guest's subtotal, discounts, final total and
// deposit. Automatic rules are mutually exclusive and evaluated in priority
// order: combo beats return-customer beats group. The manual discount, if
// any, is added on top of whichever automatic rule fired.
func PriceGuest(g Guest, multiGuest bool) GuestPricing {
	var p GuestPricing
	for _, s := range g.Services {
		p.Subtotal += s.Price
	}
	if g.Discount != nil {
		p.ManualDiscount = g.Discount.Amount
		p.DiscountNote = g.Discount.Name
	}

	hasBrowFirst := hasService(g, models.CategoryBrow, models.TypeFirstTime)
	hasLipFirst := hasService(g, models.CategoryLip, models.TypeFirstTime)
	hasAnyFirst := hasType(g, models.TypeFirstTime)
	hasAnyTouchup := hasType(g, models.TypeTouchUp)

	switch {
	case hasBrowFirst && hasLipFirst:
		p.AutoDiscount = ComboDiscount
		p.DiscountNote += " (brow + lip combo)"
	case hasAnyFirst && hasAnyTouchup:
		p.AutoDiscount = ReturnCustomerDiscount
		p.DiscountNote += " (return customer)"
	case multiGuest && hasAnyFirst:
		p.AutoDiscount = GroupDiscount
		p.DiscountNote += " (group booking)"
	}
	p.DiscountNote = strings.TrimSpace(p.DiscountNote)

	p.Total = p.Subtotal - p.ManualDiscount - p.AutoDiscount
	if p.Total < 0 {
		p.Total = 0
	}

	// Deposit is per guest, never per group.
	if hasAnyFirst {
		p.Deposit = DepositPerGuest
	}
	return p
}

// GroupTotal sums the final totals of every guest in a submission.
func GroupTotal(guests []Guest, multiGuest bool) int {
	total := 0
	for _, g := range guests {
		total += PriceGuest(g, multiGuest).Total
	}
	return total
}

// GroupDeposit sums the deposits owed across a submission.
func GroupDeposit(guests []Guest) int {
	total := 0
	for _, g := range guests {
		if hasType(g, models.TypeFirstTime) {
			total += DepositPerGuest
		}
	}
	return total
}

func hasService(g Guest, category, svcType string) bool {
	for _, s := range g.Services {
		if s.Category == category && s.Type == svcType {
			return true
		}
	}
	return false
}

func hasType(g Guest, svcType string) bool {
	for _, s := range g.Services {
		if s.Type == svcType {
			return true
		}
	}
	return false
}