package models

import "fmt"

// ExerciseRecord is one logged workout. Records are append-only: once in
// the store they are never edited or removed.
type ExerciseRecord struct {
	Type      string `json:"type"` // cardio | strength | flexibility | other
	Name      string `json:"name"`
	Duration  int    `json:"duration"` // minutes
	Calories  int    `json:"calories"` // burned, 0 when not entered
	Intensity string `json:"intensity"` // low | moderate | high
	Notes     string `json:"notes,omitempty"`
	Time      string `json:"time"` // HH:MM
	Date      string `json:"date"` // YYYY-MM-DD
}

var exerciseTypes = map[string]bool{
	"cardio":      true,
	"strength":    true,
	"flexibility": true,
	"other":       true,
}

var intensityLevels = map[string]bool{
	"low":      true,
	"moderate": true,
	"high":     true,
}

func NewExerciseRecord(exType, name string, duration, calories int, intensity, notes, timeOfDay, date string) (ExerciseRecord, error) {
	if !exerciseTypes[exType] {
		return ExerciseRecord{}, fmt.Errorf("unknown exercise type %q", exType)
	}
	if name == "" {
		return ExerciseRecord{}, fmt.Errorf("exercise name is required")
	}
	if duration <= 0 {
		return ExerciseRecord{}, fmt.Errorf("duration must be a positive number of minutes")
	}
	if calories < 0 {
		return ExerciseRecord{}, fmt.Errorf("calories burned cannot be negative")
	}
	if !intensityLevels[intensity] {
		return ExerciseRecord{}, fmt.Errorf("unknown intensity %q", intensity)
	}
	if err := validClock(timeOfDay); err != nil {
		return ExerciseRecord{}, err
	}
	if err := validDate(date); err != nil {
		return ExerciseRecord{}, err
	}

	return ExerciseRecord{
		Type:      exType,
		Name:      name,
		Duration:  duration,
		Calories:  calories,
		Intensity: intensity,
		Notes:     notes,
		Time:      timeOfDay,
		Date:      date,
	}, nil
}
