// utils/validation.go
package utils

import "time"

// ValidateTimeOfDay checks the 24-hour HH:MM format (00:00 - 23:59).
func ValidateTimeOfDay(timeOfDay string) bool {
	_, err := time.Parse("15:04", timeOfDay)
	return err == nil
}
