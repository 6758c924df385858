package services

import (
	"testing"

	"amstudio-backend/models"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"11:00", 660},
		{"00:00", 0},
		{"18:30", 1110},
		{"custom", -1},
		{"custom 14:30", -1},
		{"", -1},
		{"lunchtime", -1},
	}
	for _, tc := range cases {
		if got := TimeToMinutes(tc.in); got != tc.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func booking(time string, duration int, status string) models.Booking {
	return models.Booking{Time: time, ServiceDuration: duration, Status: status}
}

func TestIsSlotTaken_AdjacentBookingsDoNotConflict(t *testing.T) {
	// Existing 11:00 for 120 minutes ends at 13:00; a 13:00 start is fine.
	guests := []Guest{{Services: []models.Service{svc(models.CategoryBrow, models.TypeTouchUp, 2000, 90)}}}
	existing := []models.Booking{booking("11:00", 120, models.StatusConfirmed)}

	if IsSlotTaken("13:00", 0, guests, existing, nil) {
		t.Fatal("back-to-back bookings must not be flagged as conflicting")
	}
}

func TestIsSlotTaken_OverlappingExistingBooking(t *testing.T) {
	guests := []Guest{{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}}}
	existing := []models.Booking{booking("11:00", 120, models.StatusPending)}

	if !IsSlotTaken("12:00", 0, guests, existing, nil) {
		t.Fatal("12:00 overlaps the 11:00-13:00 booking")
	}
}

func TestIsSlotTaken_CancelledBookingIgnored(t *testing.T) {
	guests := []Guest{{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}}}
	existing := []models.Booking{booking("11:00", 120, models.StatusCancelled)}

	if IsSlotTaken("12:00", 0, guests, existing, nil) {
		t.Fatal("cancelled bookings must not block a slot")
	}
}

func TestIsSlotTaken_DefaultDurationForLegacyRecords(t *testing.T) {
	guests := []Guest{{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 60)}}}
	existing := []models.Booking{booking("11:00", 0, models.StatusConfirmed)}

	// No stored duration means 120 minutes, so 12:00 still collides.
	if !IsSlotTaken("12:00", 0, guests, existing, nil) {
		t.Fatal("expected the default 120-minute duration to apply")
	}
}

func TestIsSlotTaken_CustomSlotNeverTaken(t *testing.T) {
	guests := []Guest{{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}}}
	existing := []models.Booking{booking("11:00", 120, models.StatusConfirmed)}

	if IsSlotTaken("custom", 0, guests, existing, nil) {
		t.Fatal("the custom-time request option is never a fixed slot")
	}
}

func TestIsSlotTaken_OtherGuestInSession(t *testing.T) {
	guests := []Guest{
		{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}},
		{Services: []models.Service{svc(models.CategoryLip, models.TypeFirstTime, 8000, 150)}},
	}
	guestTimes := map[int]string{1: "13:00"}

	// Guest 1 holds 13:00-15:30; guest 0 asking for 14:00 must be blocked.
	if !IsSlotTaken("14:00", 0, guests, nil, guestTimes) {
		t.Fatal("expected conflict with the other guest's in-progress time")
	}
}

func TestIsSlotTaken_SelfIsNeverAConflict(t *testing.T) {
	guests := []Guest{
		{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}},
	}
	guestTimes := map[int]string{0: "13:00"}

	if IsSlotTaken("13:00", 0, guests, nil, guestTimes) {
		t.Fatal("a guest's own chosen time must not conflict with itself")
	}
}

func TestIsSlotTaken_MalformedExistingTimeSkipped(t *testing.T) {
	guests := []Guest{{Services: []models.Service{svc(models.CategoryBrow, models.TypeFirstTime, 6000, 120)}}}
	existing := []models.Booking{booking("custom 14:30", 120, models.StatusConfirmed)}

	if IsSlotTaken("14:00", 0, guests, existing, nil) {
		t.Fatal("bookings with negotiated custom times are excluded from overlap math")
	}
}
