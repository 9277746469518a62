package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/services"
)

func newDashboardRouter(store *services.Store, user *models.SessionRecord) *gin.Engine {
	r := gin.New()
	dc := NewDashboardController(store)
	r.GET("/api/dashboard", func(c *gin.Context) {
		if user != nil {
			c.Set("user", *user)
		}
		dc.Summary(c)
	})
	return r
}

func TestDashboardAggregatesTodayOnly(t *testing.T) {
	store := services.NewStore()
	today := time.Now().Format(models.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)

	store.AppendNutrition(models.NutritionRecord{Meal: "breakfast", Food: "Oatmeal", Quantity: 1, Unit: "cup", Calories: 300, Date: today})
	store.AppendNutrition(models.NutritionRecord{Meal: "dinner", Food: "Pasta", Quantity: 1, Unit: "bowl", Calories: 600, Date: yesterday})
	store.AppendExercise(models.ExerciseRecord{Type: "cardio", Name: "Run", Duration: 30, Intensity: "high", Time: "07:00", Date: today})
	store.AppendExercise(models.ExerciseRecord{Type: "cardio", Name: "Old Run", Duration: 30, Intensity: "high", Time: "07:00", Date: yesterday})
	store.AppendSleep(models.SleepRecord{Bedtime: "23:00", WakeTime: "05:30", Duration: 6.5, Quality: "fair", Date: today})

	r := newDashboardRouter(store, nil)
	rr := getJSON(t, r, "/api/dashboard")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	dashboard := body["dashboard"].(map[string]any)
	assert.Equal(t, float64(300), dashboard["calories_consumed"])
	assert.Equal(t, float64(1), dashboard["exercises_completed"])
	assert.Equal(t, 6.5, dashboard["sleep_hours"])
}

func TestDashboardSleepFallback(t *testing.T) {
	r := newDashboardRouter(services.NewStore(), nil)
	rr := getJSON(t, r, "/api/dashboard")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	dashboard := body["dashboard"].(map[string]any)
	assert.Equal(t, 7.5, dashboard["sleep_hours"])
}

func TestDashboardWelcomeMessage(t *testing.T) {
	user := &models.SessionRecord{Name: "Jordan Smith", LoginTime: time.Now()}
	r := newDashboardRouter(services.NewStore(), user)

	rr := getJSON(t, r, "/api/dashboard")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Welcome back, Jordan!", body["welcome_message"])
}
