package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
)

type GoalController struct {
	Store    *services.Store
	Notifier services.Notifier
}

func NewGoalController(store *services.Store, notifier services.Notifier) *GoalController {
	return &GoalController{Store: store, Notifier: notifier}
}

type goalInput struct {
	Type        string   `json:"type"`
	Target      *float64 `json:"target"`
	Unit        string   `json:"unit"`
	Deadline    string   `json:"deadline"`
	Description string   `json:"description"`
}

// Log appends one goal. User-created goals always start at zero progress.
func (gc *GoalController) Log(c *gin.Context) {
	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	missing := requiredFields(map[string]bool{
		"type":   input.Type != "",
		"target": input.Target != nil,
		"unit":   input.Unit != "",
	})
	if len(missing) > 0 {
		gc.Notifier.Error(msgFillRequired)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFillRequired, "fields": missing})
		return
	}

	record, err := models.NewGoalRecord(
		input.Type,
		*input.Target,
		input.Unit,
		input.Deadline,
		input.Description,
	)
	if err != nil {
		gc.Notifier.Error(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gc.Store.AppendGoal(record)
	gc.Notifier.Success("Goal added successfully!")

	c.JSON(http.StatusCreated, gin.H{"goal": record})
}

// List returns every goal with its progress percentage and status.
func (gc *GoalController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"goals": services.GoalsWithProgress(gc.Store)})
}
