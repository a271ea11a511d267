// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"medremind-backend/config"
	"medremind-backend/models"
	"medremind-backend/services"
	"medremind-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview handles GET /dashboard: stored totals plus the
// live active-trigger count.
func GetDashboardOverview(scheduler *services.ReminderScheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var total int64
		if err := config.DB.Model(&models.Reminder{}).Count(&total).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}

		var dispatches int64
		since := time.Now().AddDate(0, 0, -7)
		if err := config.DB.Model(&models.DispatchLog{}).
			Where("sent_at >= ?", since).Count(&dispatches).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalReminders": total,
			"activeTriggers": scheduler.ActiveCount(),
			"dispatchesWeek": dispatches,
		})
	}
}
