package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"medremind-backend/models"
)

// smsTimeout bounds the Twilio call so a slow provider cannot stall
// the tick loop.
const smsTimeout = 10 * time.Second

// NotificationDispatcher sends the local alert and the SMS for a firing
// trigger. Both channels are best-effort: failures are logged and
// recorded, never returned.
type NotificationDispatcher struct {
	db *gorm.DB

	// Channel functions, swappable in tests. sendSMS is nil when the
	// Twilio credentials are not configured.
	notify  func(medicine string) error
	sendSMS func(medicine, phone string) error
}

func NewNotificationDispatcher(db *gorm.DB) *NotificationDispatcher {
	d := &NotificationDispatcher{
		db:     db,
		notify: showNotification,
	}

	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_PHONE_NUMBER")

	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Println("Twilio not configured, SMS channel disabled")
		return d
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	client.Client.SetTimeout(smsTimeout)

	d.sendSMS = func(medicine, phone string) error {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(phone)
		params.SetFrom(fromNumber)
		params.SetBody("Reminder: Take your medicine - " + medicine)

		_, err := client.Api.CreateMessage(params)
		return err
	}

	return d
}

// Dispatch attempts both channels independently and never returns an
// error. An empty phone or an unconfigured SMS channel skips the SMS
// step silently; the local alert is attempted regardless.
func (d *NotificationDispatcher) Dispatch(reminderID uint, medicine, phone string) {
	if err := d.notify(medicine); err != nil {
		log.Printf("Notification failed for %s: %v", medicine, err)
		d.record(reminderID, medicine, "local", "failed", err)
	} else {
		d.record(reminderID, medicine, "local", "sent", nil)
	}

	if phone == "" || d.sendSMS == nil {
		return
	}

	if err := d.sendSMS(medicine, phone); err != nil {
		log.Printf("SMS failed for %s: %v", medicine, err)
		d.record(reminderID, medicine, "sms", "failed", err)
	} else {
		d.record(reminderID, medicine, "sms", "sent", nil)
	}
}

// record appends a DispatchLog row. A failed write is itself only
// logged; the audit trail never blocks a dispatch.
func (d *NotificationDispatcher) record(reminderID uint, medicine, channel, status string, cause error) {
	if d.db == nil {
		return
	}

	entry := models.DispatchLog{
		ReminderID: reminderID,
		Medicine:   medicine,
		Channel:    channel,
		Status:     status,
		SentAt:     time.Now(),
	}
	if cause != nil {
		entry.ErrorMessage = cause.Error()
	}

	if err := d.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log dispatch for reminder %d: %v", reminderID, err)
	}
}

func showNotification(medicine string) error {
	return beeep.Notify("Medicine Reminder", fmt.Sprintf("It's time to take %s", medicine), "")
}
