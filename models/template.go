package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template types match the admin actions that trigger an outgoing message.
const (
	TemplateConfirm  = "confirm"
	TemplateVerify   = "verify"
	TemplateCancel   = "cancel"
	TemplateReminder = "reminder"
)

// MessageTemplate holds the operator-editable text for customer
// notifications. Content may use the placeholders {{name}}, {{date}},
// {{time}}, {{service}} and {{location}}.
type MessageTemplate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Type     string    `gorm:"type:varchar(20);not null" json:"type"`
	Title    string    `gorm:"not null" json:"title"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

func (t *MessageTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
