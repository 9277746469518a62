package services

import (
	"github.com/Paintedstork28/fitness-tracker/models"
	"github.com/Paintedstork28/fitness-tracker/utils"
)

// DefaultSleepHours is shown when nothing has been logged yet.
const DefaultSleepHours = 7.5

// DashboardSummary carries the three headline numbers on the dashboard.
type DashboardSummary struct {
	CaloriesConsumed   int     `json:"calories_consumed"`
	ExercisesCompleted int     `json:"exercises_completed"`
	SleepHours         float64 `json:"sleep_hours"`
}

// BuildDashboard recomputes the dashboard for the given calendar day:
// calories consumed that day, exercises completed that day, and the
// duration of the most recently appended sleep record.
func BuildDashboard(store *Store, today string) DashboardSummary {
	total := 0
	for _, n := range store.NutritionByDate(today) {
		total += n.Calories
	}

	summary := DashboardSummary{
		CaloriesConsumed:   total,
		ExercisesCompleted: len(store.ExercisesByDate(today)),
		SleepHours:         DefaultSleepHours,
	}
	if last, ok := store.LatestSleep(); ok {
		summary.SleepHours = last.Duration
	}
	return summary
}

// ExerciseRow is one line of the visible exercise table.
type ExerciseRow struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Calories  int    `json:"calories"`
	Intensity string `json:"intensity"`
	Time      string `json:"time"`
}

// ExerciseTable rebuilds the table from the given day's records only,
// one row per record in append order.
func ExerciseTable(store *Store, date string) []ExerciseRow {
	records := store.ExercisesByDate(date)
	rows := make([]ExerciseRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ExerciseRow{
			Name:      r.Name,
			Type:      r.Type,
			Duration:  r.Duration,
			Calories:  r.Calories,
			Intensity: r.Intensity,
			Time:      r.Time,
		})
	}
	return rows
}

// NutritionSummary lists a day's entries with their macro totals.
type NutritionSummary struct {
	Entries  []models.NutritionRecord `json:"entries"`
	Calories int                      `json:"calories"`
	Protein  float64                  `json:"protein"`
	Carbs    float64                  `json:"carbs"`
	Fat      float64                  `json:"fat"`
}

func NutritionForDate(store *Store, date string) NutritionSummary {
	summary := NutritionSummary{Entries: store.NutritionByDate(date)}
	for _, n := range summary.Entries {
		summary.Calories += n.Calories
		summary.Protein += n.Protein
		summary.Carbs += n.Carbs
		summary.Fat += n.Fat
	}
	if summary.Entries == nil {
		summary.Entries = []models.NutritionRecord{}
	}
	return summary
}

// GoalProgress is a goal plus its derived display values.
type GoalProgress struct {
	models.GoalRecord
	Percent float64 `json:"percent"`
	Status  string  `json:"status"`
}

func GoalsWithProgress(store *Store) []GoalProgress {
	goals := store.Goals()
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		percent := utils.CalculateProgress(g.Current, g.Target)
		out = append(out, GoalProgress{
			GoalRecord: g,
			Percent:    percent,
			Status:     utils.ProgressStatus(percent),
		})
	}
	return out
}
