package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// DefaultTimeSlots is the fallback grid shown when a location has no
// configured slots. The trailing "custom" entry is the adjust-time request
// option; its real time is negotiated out-of-band.
var DefaultTimeSlots = []string{"11:00", "13:00", "15:00", "17:00", "18:30", "custom"}

// LocationSetting stores the bookable slot grid for one branch plus
// per-date overrides (e.g. a shortened holiday schedule).
type LocationSetting struct {
	LocationID   string        `gorm:"primary_key" json:"locationId"`
	TimeSlots    StringList    `gorm:"type:jsonb" json:"timeSlots"`
	SpecialRules SlotOverrides `gorm:"type:jsonb;default:'{}'" json:"specialRules"`
}

// SlotsForDate resolves the effective slot grid for a date: a special rule
// wins over the location grid, which wins over the default.
func (s LocationSetting) SlotsForDate(date string) []string {
	if override, ok := s.SpecialRules[date]; ok && len(override) > 0 {
		return override
	}
	if len(s.TimeSlots) > 0 {
		return s.TimeSlots
	}
	return DefaultTimeSlots
}

// SlotOverrides maps a YYYY-MM-DD date to a replacement slot grid.
type SlotOverrides map[string][]string

func (o SlotOverrides) Value() (driver.Value, error) {
	if o == nil {
		return json.Marshal(SlotOverrides{})
	}
	return json.Marshal(o)
}

func (o *SlotOverrides) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, o)
}
