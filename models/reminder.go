package models

import "time"

// Reminder is one persisted reminder request. Rows are append-only:
// nothing ever updates or deletes them, expiry is evaluated in memory
// by the scheduler.
type Reminder struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Medicine     string    `gorm:"column:medicine;type:text;not null" json:"medicine"`
	TimeOfDay    string    `gorm:"column:time;type:text;not null" json:"time"`
	DurationDays int       `gorm:"column:days;not null" json:"days"`
	Phone        string    `gorm:"column:phone;type:text" json:"phone,omitempty"`
	StartDate    time.Time `gorm:"column:start_date;not null" json:"startDate"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// ExpiresAt is the instant the reminder stops being active.
func (r *Reminder) ExpiresAt() time.Time {
	return r.StartDate.AddDate(0, 0, r.DurationDays)
}

// Active reports whether the reminder should still fire at now.
func (r *Reminder) Active(now time.Time) bool {
	return now.Before(r.ExpiresAt())
}
