package services

import (
	"context"
	"log"
	"time"

	"github.com/benbjohnson/clock"
)

const tickInterval = 1 * time.Second

// SchedulerRunner drives the scheduler's tick loop for the lifetime of
// the process. On startup it rebuilds the active set from the store,
// expired rows included: the scheduler drops those on its first tick.
type SchedulerRunner struct {
	store     *ReminderStore
	scheduler *ReminderScheduler
	clock     clock.Clock
}

func NewSchedulerRunner(store *ReminderStore, scheduler *ReminderScheduler) *SchedulerRunner {
	return &SchedulerRunner{
		store:     store,
		scheduler: scheduler,
		clock:     clock.New(),
	}
}

// Run loads persisted reminders, registers them, then ticks roughly
// once a second until ctx is cancelled. Blocking; call in a goroutine.
// Cancellation lets the in-flight tick finish before returning.
func (r *SchedulerRunner) Run(ctx context.Context) error {
	reminders, err := r.store.LoadAll()
	if err != nil {
		return err
	}
	for _, reminder := range reminders {
		r.scheduler.Register(reminder)
	}
	log.Printf("Medicine reminder scheduler started, %d reminder(s) loaded", len(reminders))

	ticker := r.clock.Ticker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopping")
			return nil
		case now := <-ticker.C:
			r.scheduler.Tick(now)
		}
	}
}
