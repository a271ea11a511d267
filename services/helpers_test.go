package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"medremind-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Every pooled connection gets its own :memory: database, so keep
	// the pool at a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Reminder{}, &models.DispatchLog{}))

	return db
}

type dispatchCall struct {
	reminderID uint
	medicine   string
	phone      string
}

// recordingDispatcher captures dispatches instead of sending anything.
type recordingDispatcher struct {
	mu    sync.Mutex
	calls []dispatchCall
}

func (d *recordingDispatcher) Dispatch(reminderID uint, medicine, phone string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, dispatchCall{reminderID: reminderID, medicine: medicine, phone: phone})
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}
