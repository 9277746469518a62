package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
)

type NutritionController struct {
	Store    *services.Store
	Notifier services.Notifier
}

func NewNutritionController(store *services.Store, notifier services.Notifier) *NutritionController {
	return &NutritionController{Store: store, Notifier: notifier}
}

type nutritionInput struct {
	Meal     string   `json:"meal"`
	Food     string   `json:"food"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Calories *int     `json:"calories"`
	Protein  *float64 `json:"protein"` // optional macros, 0 when blank
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

func (nc *NutritionController) Log(c *gin.Context) {
	var input nutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	missing := requiredFields(map[string]bool{
		"meal":     input.Meal != "",
		"food":     input.Food != "",
		"quantity": input.Quantity != nil,
		"unit":     input.Unit != "",
		"calories": input.Calories != nil,
	})
	if len(missing) > 0 {
		nc.Notifier.Error(msgFillRequired)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFillRequired, "fields": missing})
		return
	}

	protein, carbs, fat := 0.0, 0.0, 0.0
	if input.Protein != nil {
		protein = *input.Protein
	}
	if input.Carbs != nil {
		carbs = *input.Carbs
	}
	if input.Fat != nil {
		fat = *input.Fat
	}

	today := time.Now().Format(models.DateLayout)
	record, err := models.NewNutritionRecord(
		input.Meal,
		input.Food,
		*input.Quantity,
		input.Unit,
		*input.Calories,
		protein,
		carbs,
		fat,
		today,
	)
	if err != nil {
		nc.Notifier.Error(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nc.Store.AppendNutrition(record)
	nc.Notifier.Success("Food logged successfully!")

	c.JSON(http.StatusCreated, gin.H{
		"nutrition": record,
		"today":     services.NutritionForDate(nc.Store, today),
		"dashboard": services.BuildDashboard(nc.Store, today),
	})
}

func (nc *NutritionController) Today(c *gin.Context) {
	today := time.Now().Format(models.DateLayout)
	summary := services.NutritionForDate(nc.Store, today)
	c.JSON(http.StatusOK, gin.H{"date": today, "nutrition": summary})
}
