package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
)

type ExerciseController struct {
	Store    *services.Store
	Notifier services.Notifier
}

func NewExerciseController(store *services.Store, notifier services.Notifier) *ExerciseController {
	return &ExerciseController{Store: store, Notifier: notifier}
}

type exerciseInput struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Duration  *int   `json:"duration"`
	Calories  *int   `json:"calories"` // optional, 0 when blank
	Intensity string `json:"intensity"`
	Notes     string `json:"notes"`
}

// Log appends one exercise record. Time and date are stamped at submit
// time, not taken from the form.
func (ec *ExerciseController) Log(c *gin.Context) {
	var input exerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	missing := requiredFields(map[string]bool{
		"type":      input.Type != "",
		"name":      input.Name != "",
		"duration":  input.Duration != nil,
		"intensity": input.Intensity != "",
	})
	if len(missing) > 0 {
		ec.Notifier.Error(msgFillRequired)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFillRequired, "fields": missing})
		return
	}

	calories := 0
	if input.Calories != nil {
		calories = *input.Calories
	}

	now := time.Now()
	record, err := models.NewExerciseRecord(
		input.Type,
		input.Name,
		*input.Duration,
		calories,
		input.Intensity,
		input.Notes,
		now.Format(models.ClockLayout),
		now.Format(models.DateLayout),
	)
	if err != nil {
		ec.Notifier.Error(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.Store.AppendExercise(record)
	ec.Notifier.Success("Exercise logged successfully!")

	c.JSON(http.StatusCreated, gin.H{
		"exercise":  record,
		"table":     services.ExerciseTable(ec.Store, record.Date),
		"dashboard": services.BuildDashboard(ec.Store, record.Date),
	})
}

// Today returns the visible exercise table: today's records only, one row
// per record in append order.
func (ec *ExerciseController) Today(c *gin.Context) {
	today := time.Now().Format(models.DateLayout)
	c.JSON(http.StatusOK, gin.H{
		"date":      today,
		"exercises": services.ExerciseTable(ec.Store, today),
	})
}
