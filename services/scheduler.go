package services

import (
	"log"
	"sync"
	"time"

	"medremind-backend/models"
	"medremind-backend/utils"
)

// Dispatcher is what the scheduler fires into. Satisfied by
// NotificationDispatcher; tests substitute a recorder.
type Dispatcher interface {
	Dispatch(reminderID uint, medicine, phone string)
}

// activeTrigger binds a reminder to its recurring daily fire time.
// Lives only in memory; dropped the first time a tick sees it expired.
type activeTrigger struct {
	reminderID uint
	medicine   string
	phone      string
	hour       int
	minute     int
	expiresAt  time.Time
	lastFired  time.Time // start of the last calendar day this fired, zero if never
}

// ReminderScheduler owns the active trigger set. Register and Tick are
// called from different goroutines (request path vs tick loop) and
// serialize on one mutex since Tick removes while Register inserts.
type ReminderScheduler struct {
	mu         sync.Mutex
	triggers   []*activeTrigger
	dispatcher Dispatcher
}

func NewReminderScheduler(dispatcher Dispatcher) *ReminderScheduler {
	return &ReminderScheduler{dispatcher: dispatcher}
}

// Register adds a trigger for the reminder. Registering the same
// logical reminder twice creates two independent triggers.
func (s *ReminderScheduler) Register(reminder *models.Reminder) {
	fireAt, err := time.Parse("15:04", reminder.TimeOfDay)
	if err != nil {
		// Rows are validated before insert, so this only happens on a
		// hand-edited database. Skip rather than poison the set.
		log.Printf("Skipping reminder %d with bad time %q: %v", reminder.ID, reminder.TimeOfDay, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.triggers = append(s.triggers, &activeTrigger{
		reminderID: reminder.ID,
		medicine:   reminder.Medicine,
		phone:      reminder.Phone,
		hour:       fireAt.Hour(),
		minute:     fireAt.Minute(),
		expiresAt:  reminder.ExpiresAt(),
	})
}

// Tick evaluates every active trigger against now. Expiry is checked
// before the fire check, so a trigger already past its window is
// dropped without a catch-up dispatch. A trigger fires at most once
// per calendar day, at its configured minute.
func (s *ReminderScheduler) Tick(now time.Time) {
	s.mu.Lock()
	kept := s.triggers[:0]
	var due []*activeTrigger
	for _, t := range s.triggers {
		if !now.Before(t.expiresAt) {
			log.Printf("Reminder %d for %s expired, removing", t.reminderID, t.medicine)
			continue
		}
		kept = append(kept, t)

		if now.Hour() != t.hour || now.Minute() != t.minute {
			continue
		}
		today := utils.BeginningOfDay(now)
		if !t.lastFired.Before(today) {
			continue
		}
		t.lastFired = today
		due = append(due, t)
	}
	s.triggers = kept
	s.mu.Unlock()

	// Dispatch outside the lock so a slow SMS send never blocks
	// Register on the request path.
	for _, t := range due {
		s.dispatcher.Dispatch(t.reminderID, t.medicine, t.phone)
	}
}

// ActiveCount reports the current size of the active set.
func (s *ReminderScheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.triggers)
}
