package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service categories and types used by the booking engine.
const (
	CategoryBrow = "brow"
	CategoryLip  = "lip"

	TypeFirstTime = "first"
	TypeTouchUp   = "touchup"
)

// DefaultServiceDuration is assumed when a service has no duration set.
const DefaultServiceDuration = 120

type Service struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Price    int       `gorm:"not null" json:"price"` // NT$, whole units
	Category string    `gorm:"type:varchar(20);not null" json:"category"`
	Type     string    `gorm:"type:varchar(20);not null" json:"type"`

	// Touch-up only: which follow-up round and how long since the last
	// treatment this price applies to.
	Session   string `json:"session,omitempty"`
	TimeRange string `json:"timeRange,omitempty"`

	Order    int  `gorm:"default:0" json:"order"`
	Duration int  `json:"duration"` // minutes, 0 means DefaultServiceDuration
	IsActive bool `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// EffectiveDuration returns the service duration in minutes, falling back to
// the studio default when none is configured.
func (s Service) EffectiveDuration() int {
	if s.Duration > 0 {
		return s.Duration
	}
	return DefaultServiceDuration
}
