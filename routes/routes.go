package routes

import (
	"medremind-backend/config"
	"medremind-backend/controllers"
	"medremind-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	reminderService *services.ReminderService,
	scheduler *services.ReminderScheduler,
	classifier *services.Classifier,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.POST("/set_reminder", controllers.SetReminder(reminderService))
	r.GET("/dashboard", controllers.GetDashboardOverview(scheduler))

	if classifier != nil {
		r.GET("/symptoms", controllers.ListSymptoms(classifier))
		r.POST("/predict", controllers.Predict(classifier))
	}

	return r
}
