package models

// FitnessData is the serialized shape of the whole store: one ordered,
// append-only sequence per category. This is exactly what the persistence
// bridge writes into the fitnessData slot.
type FitnessData struct {
	Exercises []ExerciseRecord  `json:"exercises"`
	Nutrition []NutritionRecord `json:"nutrition"`
	Sleep     []SleepRecord     `json:"sleep"`
	Goals     []GoalRecord      `json:"goals"`
}
