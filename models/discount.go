package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount is an operator-managed flat reduction a guest may pick manually.
// It stacks with the automatic rule discounts computed by the pricing engine.
type Discount struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	Amount int       `gorm:"not null" json:"amount"` // NT$, whole units

	gorm.Model `json:"-"`
}

func (d *Discount) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
