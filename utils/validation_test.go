// utils/validation_test.go
package utils

import (
	"testing"
	"time"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"0911222333", true},
		{"0911-222-333", true},
		{"+886911222333", true},
		{"(09) 1122 2333", true},
		{"12345", false},
		{"abc123", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2026-09-01", true},
		{"2026-02-30", false},
		{"09/01/2026", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateDate(tc.date); got != tc.want {
			t.Errorf("ValidateDate(%q) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	if !IsPastDate("2026-08-31", now) {
		t.Error("yesterday is past")
	}
	if IsPastDate("2026-09-01", now) {
		t.Error("today is not past, even late in the day")
	}
	if IsPastDate("2026-09-02", now) {
		t.Error("tomorrow is not past")
	}
	if !IsPastDate("custom", now) {
		t.Error("unparseable dates count as past")
	}
}
