package services

import (
	"time"

	"gorm.io/gorm"

	"medremind-backend/models"
)

// ReminderStore is the durable record of every reminder ever requested.
// It only ever appends and scans; expiry filtering is the scheduler's
// job, not the store's.
type ReminderStore struct {
	db *gorm.DB
}

func NewReminderStore(db *gorm.DB) *ReminderStore {
	return &ReminderStore{db: db}
}

// Insert appends a new reminder row, assigning the id and start date,
// and returns the persisted record. Input validation is the caller's
// responsibility.
func (s *ReminderStore) Insert(medicine, timeOfDay string, durationDays int, phone string) (*models.Reminder, error) {
	reminder := &models.Reminder{
		Medicine:     medicine,
		TimeOfDay:    timeOfDay,
		DurationDays: durationDays,
		Phone:        phone,
		StartDate:    time.Now(),
	}

	if err := s.db.Create(reminder).Error; err != nil {
		return nil, &StorageError{Op: "insert reminder", Err: err}
	}

	return reminder, nil
}

// LoadAll returns every row ever inserted, in insertion order,
// including already-expired ones.
func (s *ReminderStore) LoadAll() ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	if err := s.db.Order("id").Find(&reminders).Error; err != nil {
		return nil, &StorageError{Op: "load reminders", Err: err}
	}
	return reminders, nil
}
