// controllers/reminder.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"medremind-backend/services"
	"medremind-backend/utils"

	"github.com/gin-gonic/gin"
)

// SetReminderInput defines the expected reminder creation payload.
// Days arrives as text from HTML forms, so it is parsed by hand.
type SetReminderInput struct {
	Medicine string `form:"medicine" json:"medicine"`
	Time     string `form:"time" json:"time"`
	Days     string `form:"days" json:"days"`
	Phone    string `form:"phone" json:"phone"`
}

// SetReminder handles POST /set_reminder.
func SetReminder(reminderService *services.ReminderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetReminderInput
		if err := c.ShouldBind(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if strings.TrimSpace(input.Medicine) == "" || input.Time == "" || input.Days == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Missing reminder details")
			return
		}

		days, err := strconv.Atoi(input.Days)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid time or duration format")
			return
		}

		reminder, err := reminderService.CreateReminder(input.Medicine, input.Time, days, input.Phone)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				utils.RespondWithError(c, http.StatusBadRequest, verr.Message)
				return
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save reminder")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"message": fmt.Sprintf("Reminder set for %s at %s for %d day(s)",
				reminder.Medicine, reminder.TimeOfDay, reminder.DurationDays),
		})
	}
}
