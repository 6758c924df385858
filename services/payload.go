// services/payload.go
package services

import (
	"strings"

	"amstudio-backend/models"

	"github.com/google/uuid"
)

// BuildGroupPayloads assembles the persistence-ready records for a whole
// submission. All guests share one freshly generated group identifier and a
// 1-based position index. A guest who picked the custom-slot option gets the
// negotiated time substituted in. Records start out pending; the payment
// status is verified immediately when no deposit is owed, unpaid otherwise.
//
// No conflict re-validation happens here; callers must have confirmed the
// slots via IsSlotTaken first. The caller is expected to store the returned
// batch atomically.
func BuildGroupPayloads(guests []Guest, guestTimes map[int]string, customTime string, loc models.Location, date string, userID string) []models.Booking {
	groupID := uuid.NewString()
	multiGuest := len(guests) > 1

	payloads := make([]models.Booking, 0, len(guests))
	for i, g := range guests {
		t := guestTimes[i]
		if strings.Contains(t, CustomSlotLabel) {
			t = CustomSlotLabel + " " + customTime
		}

		pricing := PriceGuest(g, multiGuest)

		ids := make(models.StringList, 0, len(g.Services))
		names := make([]string, 0, len(g.Services))
		for _, s := range g.Services {
			ids = append(ids, s.ID.String())
			names = append(names, s.Name)
		}

		paymentStatus := models.PaymentUnpaid
		if pricing.Deposit == 0 {
			paymentStatus = models.PaymentVerified
		}

		payloads = append(payloads, models.Booking{
			LocationID:      loc.ID,
			LocationName:    loc.Name,
			ServiceIDs:      ids,
			ServiceName:     strings.Join(names, " + "),
			ServiceDuration: CalculateGuestDuration(g.Services),
			Date:            date,
			Time:            t,
			CustomerName:    g.Name,
			CustomerPhone:   g.Phone,
			DiscountNote:    pricing.DiscountNote,
			GroupID:         groupID,
			GuestIndex:      i + 1,
			TotalPrice:      pricing.Total,
			Deposit:         pricing.Deposit,
			Status:          models.StatusPending,
			PaymentStatus:   paymentStatus,
			CreatedByUserID: userID,
		})
	}
	return payloads
}
