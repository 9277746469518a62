package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintedstork28/fitness-tracker/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	slots := NewMemorySlotStore()

	source := NewStore()
	SeedSampleData(source, time.Now())
	source.AppendExercise(models.ExerciseRecord{
		Type: "cardio", Name: "Rowing", Duration: 25, Calories: 200,
		Intensity: "moderate", Time: "08:15", Date: time.Now().Format(models.DateLayout),
	})
	require.NoError(t, NewPersistenceBridge(source, slots, 0).Save())

	fresh := NewStore()
	require.NoError(t, NewPersistenceBridge(fresh, slots, 0).Load())

	assert.Equal(t, source.Snapshot(), fresh.Snapshot())
}

func TestLoadAbsentSlotKeepsSampleData(t *testing.T) {
	slots := NewMemorySlotStore()
	store := NewStore()
	SeedSampleData(store, time.Now())

	require.NoError(t, NewPersistenceBridge(store, slots, 0).Load())

	assert.Len(t, store.Exercises(), 4)
}

func TestLoadCorruptSlotReportsWithoutTouchingStore(t *testing.T) {
	slots := NewMemorySlotStore()
	require.NoError(t, slots.Set(DataSlot, "{definitely not json"))

	store := NewStore()
	SeedSampleData(store, time.Now())
	before := store.Snapshot()

	err := NewPersistenceBridge(store, slots, 0).Load()
	require.Error(t, err)
	assert.Equal(t, before, store.Snapshot())
}

func TestLoadedSnapshotOverwritesSamples(t *testing.T) {
	slots := NewMemorySlotStore()

	saved := NewStore()
	saved.AppendGoal(models.GoalRecord{Type: "weight", Target: 2, Current: 0.5, Unit: "lbs"})
	require.NoError(t, NewPersistenceBridge(saved, slots, 0).Save())

	store := NewStore()
	SeedSampleData(store, time.Now())
	require.NoError(t, NewPersistenceBridge(store, slots, 0).Load())

	goals := store.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "weight", goals[0].Type)
	assert.Empty(t, store.Exercises())
}

func TestAutosaveStopsOnCancelWithFinalSave(t *testing.T) {
	slots := NewMemorySlotStore()
	store := NewStore()
	store.AppendGoal(models.GoalRecord{Type: "other", Target: 1, Unit: "x"})

	bridge := NewPersistenceBridge(store, slots, time.Hour) // never ticks during the test
	ctx, cancel := context.WithCancel(context.Background())
	bridge.StartAutosave(ctx)
	cancel()

	// the final save lands shortly after cancellation
	require.Eventually(t, func() bool {
		_, ok, _ := slots.Get(DataSlot)
		return ok
	}, time.Second, 10*time.Millisecond)
}
