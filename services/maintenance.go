package services

import (
	"log"
	"time"

	cron "github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"medremind-backend/models"
)

const dispatchLogRetention = 30 * 24 * time.Hour

// StartMaintenanceScheduler runs nightly housekeeping: prune old
// dispatch-log rows and log the scheduler's state. The reminders table
// itself is never pruned.
func StartMaintenanceScheduler(db *gorm.DB, scheduler *ReminderScheduler) *cron.Cron {
	c := cron.New()

	// Run daily at midnight
	c.AddFunc("0 0 * * *", func() {
		pruned, err := PruneDispatchLogs(db, time.Now().Add(-dispatchLogRetention))
		if err != nil {
			log.Printf("Dispatch log cleanup failed: %v", err)
		} else if pruned > 0 {
			log.Printf("Pruned %d dispatch log(s)", pruned)
		}

		log.Printf("Scheduler state: %d active trigger(s)", scheduler.ActiveCount())
	})

	c.Start()
	return c
}

// PruneDispatchLogs deletes audit rows sent before cutoff.
func PruneDispatchLogs(db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.Where("sent_at < ?", cutoff).Delete(&models.DispatchLog{})
	return res.RowsAffected, res.Error
}
