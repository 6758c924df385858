package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking lifecycle states.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	PaymentUnpaid   = "unpaid"
	PaymentReported = "reported"
	PaymentVerified = "verified"
)

// Booking is one guest's finalized appointment record. Every guest in a
// single submission shares a GroupID and is persisted in the same
// transaction.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	LocationID   string `gorm:"index;not null" json:"locationId"`
	LocationName string `json:"locationName"`

	ServiceIDs      StringList `gorm:"type:jsonb" json:"serviceIds"`
	ServiceName     string     `json:"serviceName"`
	ServiceDuration int        `json:"serviceDuration"` // minutes

	Date string `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"not null" json:"time"`       // "HH:MM" or "custom HH:MM"

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"index;not null" json:"customerPhone"`

	DiscountNote string `json:"discountNote"`
	GroupID      string `gorm:"index;not null" json:"groupId"`
	GuestIndex   int    `json:"guestIndex"` // 1-based position within the group

	TotalPrice int `json:"totalPrice"`
	Deposit    int `json:"deposit"`

	Status        string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus string `gorm:"type:varchar(20);default:'unpaid'" json:"paymentStatus"`

	PaymentLast5      string     `json:"paymentLast5,omitempty"`
	PaymentReportedAt *time.Time `json:"paymentReportedAt,omitempty"`

	CreatedByUserID string `json:"createdByUserId"`
	Notes           string `json:"notes,omitempty"`

	gorm.Model `json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// StringList stores a []string as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}
