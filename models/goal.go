package models

import "fmt"

// GoalRecord is one fitness goal. Current is the progress value; it starts
// at 0 for user-created goals and only sample seeding sets it nonzero.
type GoalRecord struct {
	Type        string  `json:"type"` // calories | exercise | sleep | weight | other
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`
	Unit        string  `json:"unit"`
	Deadline    string  `json:"deadline,omitempty"` // YYYY-MM-DD
	Description string  `json:"description,omitempty"`
}

var goalTypes = map[string]bool{
	"calories": true,
	"exercise": true,
	"sleep":    true,
	"weight":   true,
	"other":    true,
}

func NewGoalRecord(goalType string, target float64, unit, deadline, description string) (GoalRecord, error) {
	if !goalTypes[goalType] {
		return GoalRecord{}, fmt.Errorf("unknown goal type %q", goalType)
	}
	if target <= 0 {
		return GoalRecord{}, fmt.Errorf("goal target must be positive")
	}
	if unit == "" {
		return GoalRecord{}, fmt.Errorf("unit is required")
	}
	if deadline != "" {
		if err := validDate(deadline); err != nil {
			return GoalRecord{}, err
		}
	}

	return GoalRecord{
		Type:        goalType,
		Target:      target,
		Current:     0,
		Unit:        unit,
		Deadline:    deadline,
		Description: description,
	}, nil
}
