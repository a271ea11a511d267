package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "08:00", "23:59", "9:05"}
	for _, v := range valid {
		assert.True(t, ValidateTimeOfDay(v), v)
	}

	invalid := []string{"24:00", "25:61", "08:60", "0800", "eight", "", "08:00:00"}
	for _, v := range invalid {
		assert.False(t, ValidateTimeOfDay(v), v)
	}
}
