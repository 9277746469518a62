package models

import "fmt"

// NutritionRecord is one logged food entry.
type NutritionRecord struct {
	Meal     string  `json:"meal"` // breakfast | lunch | dinner | snack
	Food     string  `json:"food"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"` // grams, 0 when not entered
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Date     string  `json:"date"` // YYYY-MM-DD
}

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

func NewNutritionRecord(meal, food string, quantity float64, unit string, calories int, protein, carbs, fat float64, date string) (NutritionRecord, error) {
	if !mealTypes[meal] {
		return NutritionRecord{}, fmt.Errorf("unknown meal type %q", meal)
	}
	if food == "" {
		return NutritionRecord{}, fmt.Errorf("food name is required")
	}
	if quantity <= 0 {
		return NutritionRecord{}, fmt.Errorf("quantity must be positive")
	}
	if unit == "" {
		return NutritionRecord{}, fmt.Errorf("unit is required")
	}
	if calories < 0 {
		return NutritionRecord{}, fmt.Errorf("calories cannot be negative")
	}
	if protein < 0 || carbs < 0 || fat < 0 {
		return NutritionRecord{}, fmt.Errorf("macros cannot be negative")
	}
	if err := validDate(date); err != nil {
		return NutritionRecord{}, err
	}

	return NutritionRecord{
		Meal:     meal,
		Food:     food,
		Quantity: quantity,
		Unit:     unit,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Date:     date,
	}, nil
}
