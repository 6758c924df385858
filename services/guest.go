// services/guest.go
package services

import (
	"errors"
	"fmt"
	"sort"

	"amstudio-backend/models"
)

// CustomSlotLabel marks the adjust-time request option. A time string
// containing it is never treated as a fixed slot.
const CustomSlotLabel = "custom"

// Guest is one person inside an in-progress submission. It only lives for
// the duration of the booking flow; what gets persisted is the Booking
// record built from it.
type Guest struct {
	Name     string
	Phone    string
	Services []models.Service
	Discount *models.Discount
}

// AddService adds a service to a guest's selection, keeping at most one
// service per category: picking a new service in an occupied category
// replaces the old one. The result is sorted by display order. Selecting the
// exact same service again is a no-op.
func AddService(selected []models.Service, svc models.Service) []models.Service {
	for _, s := range selected {
		if s.ID == svc.ID {
			return selected
		}
	}

	out := make([]models.Service, 0, len(selected)+1)
	for _, s := range selected {
		if s.Category != svc.Category {
			out = append(out, s)
		}
	}
	out = append(out, svc)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// ApplyDarkLip adds the dark-pigment pretreatment surcharge to a first-time
// lip service. The premium raises that one service's price before subtotal
// computation and annotates its display name; it does not change which
// discount tier applies. Other services are returned unchanged.
func ApplyDarkLip(svc models.Service) models.Service {
	if svc.Category != models.CategoryLip || svc.Type != models.TypeFirstTime {
		return svc
	}
	svc.Name += " (dark lip pretreatment)"
	svc.Price += DarkLipSurcharge
	return svc
}

// Validation failures surfaced to the caller before any pricing or payload
// building happens.
var (
	ErrNoGuests       = errors.New("at least one guest is required")
	ErrTermsNotAgreed = errors.New("booking terms must be accepted")
)

// ValidateSubmission checks a whole submission the way the booking form
// gates its final step: every guest needs a name, a phone, at least one
// service and a chosen time, and the terms must be accepted.
func ValidateSubmission(guests []Guest, guestTimes map[int]string, agreed bool) error {
	if len(guests) == 0 {
		return ErrNoGuests
	}
	for i, g := range guests {
		if len(g.Services) == 0 {
			return fmt.Errorf("guest %d: no service selected", i+1)
		}
		if guestTimes[i] == "" {
			return fmt.Errorf("guest %d: no time selected", i+1)
		}
		if g.Name == "" || g.Phone == "" {
			return fmt.Errorf("guest %d: name and phone are required", i+1)
		}
	}
	if !agreed {
		return ErrTermsNotAgreed
	}
	return nil
}
