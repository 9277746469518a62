package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
	"github.com/Paintedstork28/fitness-tracker/utils"
)

type SleepController struct {
	Store    *services.Store
	Notifier services.Notifier
}

func NewSleepController(store *services.Store, notifier services.Notifier) *SleepController {
	return &SleepController{Store: store, Notifier: notifier}
}

type sleepInput struct {
	Bedtime  string `json:"bedtime"`
	WakeTime string `json:"wakeTime"`
	Quality  string `json:"quality"`
	Notes    string `json:"notes"`
	Date     string `json:"date"`
}

// Log appends one sleep record. Duration is recomputed here from the
// submitted bedtime/wake-time, never taken from whatever the live
// duration display last showed.
func (sc *SleepController) Log(c *gin.Context) {
	var input sleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	missing := requiredFields(map[string]bool{
		"bedtime":  input.Bedtime != "",
		"wakeTime": input.WakeTime != "",
		"quality":  input.Quality != "",
		"date":     input.Date != "",
	})
	if len(missing) > 0 {
		sc.Notifier.Error(msgFillRequired)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFillRequired, "fields": missing})
		return
	}

	duration, err := utils.SleepDuration(input.Bedtime, input.WakeTime)
	if err != nil {
		sc.Notifier.Error(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := models.NewSleepRecord(
		input.Bedtime,
		input.WakeTime,
		duration,
		input.Quality,
		input.Notes,
		input.Date,
	)
	if err != nil {
		sc.Notifier.Error(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sc.Store.AppendSleep(record)
	sc.Notifier.Success("Sleep data logged successfully!")

	today := time.Now().Format(models.DateLayout)
	c.JSON(http.StatusCreated, gin.H{
		"sleep":     record,
		"dashboard": services.BuildDashboard(sc.Store, today),
	})
}

// History returns every sleep record in append order.
func (sc *SleepController) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sleep": sc.Store.Sleep()})
}
