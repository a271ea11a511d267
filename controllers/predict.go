// controllers/predict.go
package controllers

import (
	"net/http"
	"strings"

	"medremind-backend/services"
	"medremind-backend/utils"

	"github.com/gin-gonic/gin"
)

// PredictInput carries the comma-separated symptom list.
type PredictInput struct {
	Symptoms string `form:"symptoms" json:"symptoms"`
}

// Predict handles POST /predict: classify a symptom list into a
// disease label with the top-3 candidates.
func Predict(classifier *services.Classifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PredictInput
		if err := c.ShouldBind(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if strings.TrimSpace(input.Symptoms) == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "No symptoms provided")
			return
		}

		c.JSON(http.StatusOK, classifier.Predict(input.Symptoms))
	}
}

// ListSymptoms handles GET /symptoms: the model vocabulary for the
// front end's symptom picker.
func ListSymptoms(classifier *services.Classifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"symptoms": classifier.Symptoms()})
	}
}
