// services/notifier.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"amstudio-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// Fallback texts used when no active template of the type exists.
var defaultTemplates = map[string]string{
	models.TemplateConfirm:  "Hi {{name}}, your appointment is confirmed!\nTime: {{date}} {{time}}\nLocation: {{location}}\nService: {{service}}\nWe look forward to seeing you.",
	models.TemplateVerify:   "Hi {{name}}, we received your deposit transfer. Your appointment is now reserved. Thank you!",
	models.TemplateCancel:   "Hi {{name}}, your appointment has been cancelled. Feel free to book again anytime.",
	models.TemplateReminder: "Hi {{name}}, a reminder of your appointment tomorrow:\nTime: {{date}} {{time}}\nLocation: {{location}}\nService: {{service}}",
}

// RenderTemplate substitutes the fixed set of named placeholders with the
// booking's values.
func RenderTemplate(content string, b models.Booking) string {
	r := strings.NewReplacer(
		"{{name}}", b.CustomerName,
		"{{date}}", b.Date,
		"{{time}}", b.Time,
		"{{service}}", b.ServiceName,
		"{{location}}", b.LocationName,
	)
	return r.Replace(content)
}

type Notifier struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotifier(db *gorm.DB) *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &Notifier{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// BuildMessage renders the message for a booking and message type, using the
// operator's active template when one exists and the built-in default
// otherwise.
func (n *Notifier) BuildMessage(b models.Booking, msgType string) string {
	content := defaultTemplates[msgType]

	var tpl models.MessageTemplate
	if err := n.db.Where("type = ? AND is_active = true", msgType).
		First(&tpl).Error; err == nil {
		content = tpl.Content
	}

	return RenderTemplate(content, b)
}

// Send delivers a message to the booking's customer. WhatsApp is used when
// the phone is in E.164 format, SMS otherwise. Failures are logged, never
// propagated: an undeliverable notification must not fail the admin action
// that triggered it.
func (n *Notifier) Send(b models.Booking, msgType, message string) {
	channel := "sms"
	to := b.CustomerPhone
	if strings.HasPrefix(b.CustomerPhone, "+") {
		to = "whatsapp:" + b.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	status := "sent"
	errorMessage := ""
	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Printf("Booking %s: failed to send %s notification: %v", b.ID, msgType, err)
		status = "failed"
		errorMessage = err.Error()
	}

	entry := models.NotificationLog{
		BookingID:    b.ID,
		Type:         msgType,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMessage,
		Channel:      channel,
		SentAt:       time.Now(),
	}
	if err := n.db.Create(&entry).Error; err != nil {
		log.Printf("Booking %s: failed to log notification: %v", b.ID, err)
	}
}

// StartScheduler runs the next-day appointment reminder every morning.
func (n *Notifier) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		n.SendUpcomingReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendUpcomingReminders messages every confirmed booking scheduled for
// tomorrow.
func (n *Notifier) SendUpcomingReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var bookings []models.Booking
	if err := n.db.Where("date = ? AND status = ?", tomorrow, models.StatusConfirmed).
		Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, b := range bookings {
		msg := n.BuildMessage(b, models.TemplateReminder)
		n.Send(b, models.TemplateReminder, msg)
	}

	log.Println("Daily reminder processing completed")
}
