package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medremind-backend/models"
)

func newReminder(id uint, medicine, timeOfDay string, days int, phone string, start time.Time) *models.Reminder {
	return &models.Reminder{
		ID:           id,
		Medicine:     medicine,
		TimeOfDay:    timeOfDay,
		DurationDays: days,
		Phone:        phone,
		StartDate:    start,
	}
}

func TestSchedulerFiresDailyUntilExpiry(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	scheduler := NewReminderScheduler(dispatcher)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	scheduler.Register(newReminder(1, "Aspirin", "08:00", 3, "", start))
	require.Equal(t, 1, scheduler.ActiveCount())

	for day := 1; day <= 3; day++ {
		scheduler.Tick(time.Date(2024, 1, day, 8, 0, 0, 0, time.UTC))
	}
	require.Equal(t, 3, dispatcher.count())
	assert.Equal(t, "Aspirin", dispatcher.calls[0].medicine)
	assert.Equal(t, "", dispatcher.calls[0].phone)

	// Day 4 is on or past expiry: the trigger is dropped, no dispatch.
	scheduler.Tick(time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, dispatcher.count())
	assert.Equal(t, 0, scheduler.ActiveCount())
}

func TestSchedulerFiresAtMostOncePerDay(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	scheduler := NewReminderScheduler(dispatcher)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	scheduler.Register(newReminder(1, "Ibuprofen", "09:30", 2, "", start))

	// Two ticks inside the same configured minute.
	scheduler.Tick(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
	scheduler.Tick(time.Date(2024, 1, 1, 9, 30, 40, 0, time.UTC))
	assert.Equal(t, 1, dispatcher.count())

	// Next day fires again.
	scheduler.Tick(time.Date(2024, 1, 2, 9, 30, 5, 0, time.UTC))
	assert.Equal(t, 2, dispatcher.count())
}

func TestSchedulerSkipsOffScheduleTicks(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	scheduler := NewReminderScheduler(dispatcher)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	scheduler.Register(newReminder(1, "Aspirin", "08:00", 3, "", start))

	scheduler.Tick(time.Date(2024, 1, 1, 7, 59, 0, 0, time.UTC))
	scheduler.Tick(time.Date(2024, 1, 1, 8, 1, 0, 0, time.UTC))
	assert.Equal(t, 0, dispatcher.count())
	assert.Equal(t, 1, scheduler.ActiveCount())
}

func TestSchedulerDropsExpiredBeforeFiring(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	scheduler := NewReminderScheduler(dispatcher)

	// Reconstructed from a long-past start date: already expired.
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	scheduler.Register(newReminder(1, "Old", "08:00", 5, "", start))
	require.Equal(t, 1, scheduler.ActiveCount())

	// First tick lands exactly on the configured minute; expiry is
	// checked first, so it must not fire.
	scheduler.Tick(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, dispatcher.count())
	assert.Equal(t, 0, scheduler.ActiveCount())
}

func TestSchedulerDuplicateRegistrationDoubleFires(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	scheduler := NewReminderScheduler(dispatcher)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newReminder(1, "Aspirin", "08:00", 3, "", start)
	scheduler.Register(r)
	scheduler.Register(r)
	require.Equal(t, 2, scheduler.ActiveCount())

	scheduler.Tick(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, 2, dispatcher.count())
}

func TestSchedulerSkipsUnparseableStoredTime(t *testing.T) {
	scheduler := NewReminderScheduler(&recordingDispatcher{})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	scheduler.Register(newReminder(1, "Bad", "not-a-time", 3, "", start))
	assert.Equal(t, 0, scheduler.ActiveCount())
}

func TestSchedulerConcurrentRegisterAndTick(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	scheduler := NewReminderScheduler(dispatcher)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n uint) {
			defer wg.Done()
			scheduler.Register(newReminder(n, "Med", "12:00", 1, "", start))
		}(uint(i + 1))
		go func() {
			defer wg.Done()
			scheduler.Tick(time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, scheduler.ActiveCount())
}
