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

func newExerciseRouter(store *services.Store, notifier services.Notifier) *gin.Engine {
	r := gin.New()
	ec := NewExerciseController(store, notifier)
	r.POST("/api/exercises", ec.Log)
	r.GET("/api/exercises/today", ec.Today)
	return r
}

// A submission with a blank required field is rejected outright, then the
// corrected resubmission lands exactly once and moves the dashboard.
func TestExerciseSubmitRejectThenAccept(t *testing.T) {
	store := services.NewStore()
	notifier := &recordingNotifier{}
	r := newExerciseRouter(store, notifier)

	before := services.BuildDashboard(store, time.Now().Format(models.DateLayout))

	rr := postJSON(t, r, "/api/exercises", gin.H{
		"type":     "strength",
		"name":     "Push-ups",
		"duration": 15,
		"calories": 120,
		// intensity missing
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decodeBody(t, rr)
	assert.Contains(t, body["fields"], "intensity")
	assert.Empty(t, store.Exercises(), "no record on validation failure")
	require.Len(t, notifier.errors, 1)
	assert.Empty(t, notifier.successes)

	rr = postJSON(t, r, "/api/exercises", gin.H{
		"type":      "strength",
		"name":      "Push-ups",
		"duration":  15,
		"calories":  120,
		"intensity": "moderate",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	require.Len(t, store.Exercises(), 1)
	require.Len(t, notifier.successes, 1)

	body = decodeBody(t, rr)
	dashboard := body["dashboard"].(map[string]any)
	assert.Equal(t, float64(before.ExercisesCompleted+1), dashboard["exercises_completed"])
}

func TestExerciseSubmitStampsTimeAndDate(t *testing.T) {
	store := services.NewStore()
	r := newExerciseRouter(store, &recordingNotifier{})

	rr := postJSON(t, r, "/api/exercises", gin.H{
		"type":      "cardio",
		"name":      "Morning Run",
		"duration":  30,
		"intensity": "high",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	records := store.Exercises()
	require.Len(t, records, 1)
	assert.Equal(t, time.Now().Format(models.DateLayout), records[0].Date)
	assert.NotEmpty(t, records[0].Time)
	assert.Equal(t, 0, records[0].Calories, "blank calories defaults to 0")
}

func TestExerciseSubmitRejectsBadValues(t *testing.T) {
	store := services.NewStore()
	notifier := &recordingNotifier{}
	r := newExerciseRouter(store, notifier)

	// non-numeric duration fails typed binding
	rr := postJSON(t, r, "/api/exercises", gin.H{
		"type":      "cardio",
		"name":      "Run",
		"duration":  "thirty",
		"intensity": "high",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// unknown intensity fails record construction
	rr = postJSON(t, r, "/api/exercises", gin.H{
		"type":      "cardio",
		"name":      "Run",
		"duration":  30,
		"intensity": "extreme",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Empty(t, store.Exercises())
}

func TestExerciseTodayListsOnlyToday(t *testing.T) {
	store := services.NewStore()
	today := time.Now().Format(models.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	store.AppendExercise(models.ExerciseRecord{Type: "cardio", Name: "Old Run", Duration: 30, Intensity: "high", Time: "07:00", Date: yesterday})
	store.AppendExercise(models.ExerciseRecord{Type: "strength", Name: "Push-ups", Duration: 15, Calories: 120, Intensity: "moderate", Time: "12:30", Date: today})

	r := newExerciseRouter(store, &recordingNotifier{})
	rr := getJSON(t, r, "/api/exercises/today")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	rows := body["exercises"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "Push-ups", row["name"])
	assert.Equal(t, "moderate", row["intensity"])
}
