package services

import (
	"sync"

	"github.com/Paintedstork28/fitness-tracker/models"
)

// Store holds every logged record, one append-only sequence per category.
// There is no update or delete: the user-facing tables are filtered views
// over this log. The HTTP layer appends and reads concurrently, so access
// is guarded.
type Store struct {
	mu   sync.RWMutex
	data models.FitnessData
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AppendExercise(r models.ExerciseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Exercises = append(s.data.Exercises, r)
}

func (s *Store) AppendNutrition(r models.NutritionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Nutrition = append(s.data.Nutrition, r)
}

func (s *Store) AppendSleep(r models.SleepRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Sleep = append(s.data.Sleep, r)
}

func (s *Store) AppendGoal(r models.GoalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Goals = append(s.data.Goals, r)
}

// Exercises returns the full sequence in append order.
func (s *Store) Exercises() []models.ExerciseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ExerciseRecord(nil), s.data.Exercises...)
}

func (s *Store) Nutrition() []models.NutritionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.NutritionRecord(nil), s.data.Nutrition...)
}

func (s *Store) Sleep() []models.SleepRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SleepRecord(nil), s.data.Sleep...)
}

func (s *Store) Goals() []models.GoalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.GoalRecord(nil), s.data.Goals...)
}

// ExercisesByDate returns the ordered subsequence logged on the given
// calendar day. Dates compare as plain strings.
func (s *Store) ExercisesByDate(date string) []models.ExerciseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ExerciseRecord
	for _, r := range s.data.Exercises {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) NutritionByDate(date string) []models.NutritionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.NutritionRecord
	for _, r := range s.data.Nutrition {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) SleepByDate(date string) []models.SleepRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.SleepRecord
	for _, r := range s.data.Sleep {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// LatestSleep returns the most recently appended sleep record, which is
// not necessarily the one with the newest date.
func (s *Store) LatestSleep() (models.SleepRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.data.Sleep) == 0 {
		return models.SleepRecord{}, false
	}
	return s.data.Sleep[len(s.data.Sleep)-1], true
}

// Snapshot returns a deep copy of the whole store for serialization.
func (s *Store) Snapshot() models.FitnessData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FitnessData{
		Exercises: append([]models.ExerciseRecord(nil), s.data.Exercises...),
		Nutrition: append([]models.NutritionRecord(nil), s.data.Nutrition...),
		Sleep:     append([]models.SleepRecord(nil), s.data.Sleep...),
		Goals:     append([]models.GoalRecord(nil), s.data.Goals...),
	}
}

// Replace swaps the entire contents. Seeding and snapshot loading use it;
// nothing else may overwrite the log.
func (s *Store) Replace(data models.FitnessData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}
