package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the local reminder database. The path comes from
// DB_PATH, falling back to reminders.db in the working directory.
func ConnectDB() error {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "reminders.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	DB = db
	return nil
}
