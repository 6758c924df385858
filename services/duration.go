// services/duration.go
package services

import "amstudio-backend/models"

// MultiServiceReduction is the efficiency gain when two treatments are done
// in one sitting (shared prep and numbing time), in minutes.
const MultiServiceReduction = 30

// CalculateGuestDuration derives a guest's total appointment length from
// their selected services. Services without a configured duration count as
// the studio default. Booking more than one service shaves a fixed 30
// minutes off the sum; the result never goes below zero.
func CalculateGuestDuration(selected []models.Service) int {
	if len(selected) == 0 {
		return 0
	}
	total := 0
	for _, s := range selected {
		total += s.EffectiveDuration()
	}
	if len(selected) > 1 {
		total -= MultiServiceReduction
	}
	if total < 0 {
		return 0
	}
	return total
}
