package services

import (
	"strings"

	"medremind-backend/models"
	"medremind-backend/utils"
)

// ReminderService is the API surface the HTTP layer calls into. It
// validates a creation request, persists it, and registers it with the
// scheduler, in that order. Validation failure means no side effects.
type ReminderService struct {
	store     *ReminderStore
	scheduler *ReminderScheduler
}

func NewReminderService(store *ReminderStore, scheduler *ReminderScheduler) *ReminderService {
	return &ReminderService{store: store, scheduler: scheduler}
}

// CreateReminder validates, inserts, and registers a new reminder.
// Returns the persisted record, a *ValidationError on bad input, or a
// *StorageError when the insert fails.
func (s *ReminderService) CreateReminder(medicine, timeOfDay string, durationDays int, phone string) (*models.Reminder, error) {
	medicine = strings.TrimSpace(medicine)
	if medicine == "" {
		return nil, &ValidationError{Message: "Missing reminder details"}
	}
	if !utils.ValidateTimeOfDay(timeOfDay) {
		return nil, &ValidationError{Message: "Invalid time or duration format"}
	}
	if durationDays <= 0 {
		return nil, &ValidationError{Message: "Invalid time or duration format"}
	}

	reminder, err := s.store.Insert(medicine, timeOfDay, durationDays, phone)
	if err != nil {
		return nil, err
	}

	s.scheduler.Register(reminder)
	return reminder, nil
}
