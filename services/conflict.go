// services/conflict.go
package services

import (
	"strconv"
	"strings"

	"amstudio-backend/models"
)

// timeUnset is the sentinel for times that take no part in overlap math:
// malformed strings and custom-slot requests whose real time is negotiated
// out-of-band.
const timeUnset = -1

// TimeToMinutes converts "HH:MM" to minutes since midnight. Custom-slot
// markers and anything that does not parse yield timeUnset.
func TimeToMinutes(t string) int {
	if t == "" || strings.Contains(t, CustomSlotLabel) {
		return timeUnset
	}
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return timeUnset
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeUnset
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return timeUnset
	}
	return h*60 + m
}

// overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Equal adjacent boundaries do not count: a booking that ends
// exactly when another starts is allowed.
func overlaps(s1, e1, s2, e2 int) bool {
	return max(s1, s2) < min(e1, e2)
}

// IsSlotTaken reports whether the candidate slot would collide with an
// existing booking of the day or with another guest's in-progress time in
// the same submission. The candidate's length comes from the guest's current
// service selection. A custom-slot request is never considered taken.
//
// Cancelled bookings are skipped. The guest's own previously chosen time is
// not compared against itself.
func IsSlotTaken(slot string, guestIdx int, guests []Guest, bookingsOfDay []models.Booking, guestTimes map[int]string) bool {
	slotStart := TimeToMinutes(slot)
	if slotStart == timeUnset {
		return false
	}

	var myServices []models.Service
	if guestIdx >= 0 && guestIdx < len(guests) {
		myServices = guests[guestIdx].Services
	}
	myEnd := slotStart + CalculateGuestDuration(myServices)

	for _, b := range bookingsOfDay {
		if b.Status == models.StatusCancelled {
			continue
		}
		bStart := TimeToMinutes(b.Time)
		if bStart == timeUnset {
			continue
		}
		dur := b.ServiceDuration
		if dur <= 0 {
			dur = models.DefaultServiceDuration
		}
		if overlaps(slotStart, myEnd, bStart, bStart+dur) {
			return true
		}
	}

	for gIdx, t := range guestTimes {
		if gIdx == guestIdx {
			continue
		}
		otherStart := TimeToMinutes(t)
		if otherStart == timeUnset {
			continue
		}
		var otherServices []models.Service
		if gIdx >= 0 && gIdx < len(guests) {
			otherServices = guests[gIdx].Services
		}
		otherEnd := otherStart + CalculateGuestDuration(otherServices)
		if overlaps(slotStart, myEnd, otherStart, otherEnd) {
			return true
		}
	}

	return false
}
