package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DispatchLog records one notification attempt for one channel.
type DispatchLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	ReminderID   uint      `gorm:"index"`
	Medicine     string    `gorm:"type:text"`
	Channel      string    `gorm:"type:varchar(20)"` // local, sms
	Status       string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

func (d *DispatchLog) BeforeCreate(tx *gorm.DB) (err error) {
	d.ID = uuid.New()
	return
}
