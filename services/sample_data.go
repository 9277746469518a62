package services

import (
	"time"

	"github.com/Paintedstork28/fitness-tracker/models"
)

// SeedSampleData fills the store with the fixed demo rows. It runs once at
// startup, before the persisted snapshot is loaded; a loaded snapshot
// replaces all of it.
func SeedSampleData(store *Store, now time.Time) {
	today := now.Format(models.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)
	twoDaysAgo := now.AddDate(0, 0, -2).Format(models.DateLayout)

	store.Replace(models.FitnessData{
		Exercises: []models.ExerciseRecord{
			{Type: "cardio", Name: "Morning Run", Duration: 30, Calories: 280, Intensity: "high", Time: "07:00", Date: today},
			{Type: "strength", Name: "Push-ups", Duration: 15, Calories: 120, Intensity: "moderate", Time: "12:30", Date: today},
			{Type: "flexibility", Name: "Yoga", Duration: 45, Calories: 150, Intensity: "low", Time: "18:00", Date: today},
			{Type: "cardio", Name: "Evening Walk", Duration: 20, Calories: 90, Intensity: "low", Time: "19:30", Date: today},
		},
		Nutrition: []models.NutritionRecord{
			{Meal: "breakfast", Food: "Oatmeal with Berries", Quantity: 1, Unit: "cup", Calories: 300, Protein: 12, Carbs: 55, Fat: 6, Date: today},
			{Meal: "lunch", Food: "Grilled Chicken Salad", Quantity: 1, Unit: "serving", Calories: 450, Protein: 35, Carbs: 15, Fat: 25, Date: today},
			{Meal: "dinner", Food: "Salmon Fillet", Quantity: 6, Unit: "oz", Calories: 350, Protein: 40, Carbs: 0, Fat: 20, Date: today},
			{Meal: "snack", Food: "Greek Yogurt", Quantity: 1, Unit: "cup", Calories: 150, Protein: 15, Carbs: 10, Fat: 4, Date: today},
		},
		Sleep: []models.SleepRecord{
			{Bedtime: "22:30", WakeTime: "06:00", Duration: 7.5, Quality: "good", Notes: "Fell asleep quickly", Date: today},
			{Bedtime: "23:00", WakeTime: "06:30", Duration: 7.5, Quality: "excellent", Notes: "Deep sleep, felt refreshed", Date: yesterday},
			{Bedtime: "22:45", WakeTime: "05:45", Duration: 7, Quality: "fair", Notes: "Woke up once during night", Date: twoDaysAgo},
			{Bedtime: "23:15", WakeTime: "06:45", Duration: 7.5, Quality: "good", Notes: "Solid night", Date: twoDaysAgo},
		},
		Goals: []models.GoalRecord{
			{Type: "calories", Target: 2200, Current: 1850, Unit: "calories"},
			{Type: "exercise", Target: 5, Current: 3, Unit: "exercises"},
			{Type: "sleep", Target: 8, Current: 7.5, Unit: "hours"},
			{Type: "weight", Target: 1.5, Current: 2.3, Unit: "lbs"},
		},
	})
}
