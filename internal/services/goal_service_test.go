package services

import (
	"context"
	"testing"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoalService() (*GoalService, *fakeGoalStore) {
	store := newFakeGoalStore()
	return NewGoalService(store), store
}

func TestCreateGoalResetsLedgerFields(t *testing.T) {
	service, _ := newTestGoalService()

	created, err := service.CreateGoal(context.Background(), &models.Goal{
		Title:           "Run 100 miles",
		Category:        "physical",
		Unit:            "miles",
		TargetProgress:  100,
		CurrentProgress: 42, // must be ignored
		StreakDays:      8,  // must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, float64(0), created.CurrentProgress)
	assert.Equal(t, 0, created.StreakDays)
	assert.Empty(t, created.CompletedDates)
	assert.Equal(t, float64(1), created.Priority, "priority should default to 1")
}

func TestCreateGoalValidation(t *testing.T) {
	service, _ := newTestGoalService()

	_, err := service.CreateGoal(context.Background(), &models.Goal{TargetProgress: 10})
	assert.Error(t, err, "empty title must be rejected")

	_, err = service.CreateGoal(context.Background(), &models.Goal{Title: "Read", TargetProgress: 0})
	assert.Error(t, err, "non-positive target must be rejected")
}

func TestToggleCompletionRecordsAndUndoes(t *testing.T) {
	service, _ := newTestGoalService()
	ctx := context.Background()

	goal, err := service.CreateGoal(ctx, &models.Goal{
		Title:          "Run 100 miles",
		Category:       "physical",
		Unit:           "miles",
		TargetProgress: 100,
	})
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	toggled, err := service.ToggleCompletion(ctx, goal.ID.Hex(), day, 5)
	require.NoError(t, err)
	assert.Equal(t, float64(5), toggled.CurrentProgress)
	assert.Equal(t, float64(5), toggled.CompletedDates["2025-03-10"])
	assert.Equal(t, 1, toggled.StreakDays)

	// Toggling the same day again undoes the entry exactly.
	toggled, err = service.ToggleCompletion(ctx, goal.ID.Hex(), day, 5)
	require.NoError(t, err)
	assert.Equal(t, float64(0), toggled.CurrentProgress)
	assert.NotContains(t, toggled.CompletedDates, "2025-03-10")
	assert.Equal(t, 1, toggled.StreakDays, "undo does not decrement the per-goal streak")
}

func TestToggleCompletionClampsToTarget(t *testing.T) {
	service, store := newTestGoalService()
	ctx := context.Background()

	goal := store.add(&models.Goal{
		Title:           "Burn calories",
		Category:        "physical",
		Unit:            "calories",
		TargetProgress:  10,
		CurrentProgress: 8,
	})

	day := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	toggled, err := service.ToggleCompletion(ctx, goal.ID.Hex(), day, 8)
	require.NoError(t, err)
	assert.Equal(t, float64(10), toggled.CurrentProgress, "progress clamps to target")
	assert.Equal(t, float64(8), toggled.CompletedDates["2025-03-11"], "ledger keeps the raw amount")

	// Undo subtracts the recorded amount, floored at zero.
	toggled, err = service.ToggleCompletion(ctx, goal.ID.Hex(), day, 8)
	require.NoError(t, err)
	assert.Equal(t, float64(2), toggled.CurrentProgress)
}

func TestToggleCompletionRejectsNonPositiveAmount(t *testing.T) {
	service, store := newTestGoalService()
	goal := store.add(&models.Goal{Title: "Meditate", Category: "mental", Unit: "sessions", TargetProgress: 30})

	_, err := service.ToggleCompletion(context.Background(), goal.ID.Hex(), time.Now(), 0)
	assert.Error(t, err)

	_, err = service.ToggleCompletion(context.Background(), goal.ID.Hex(), time.Now(), -2)
	assert.Error(t, err)
}

func TestToggleCompletionUnknownGoal(t *testing.T) {
	service, _ := newTestGoalService()

	_, err := service.ToggleCompletion(context.Background(), "64b0c0ffee0000000000dead", time.Now(), 1)
	assert.Error(t, err)
}

func TestAccumulateCompletionAddsWithinDay(t *testing.T) {
	service, store := newTestGoalService()
	ctx := context.Background()

	goal := store.add(&models.Goal{
		Title:          "Run 100 miles",
		Category:       "physical",
		Unit:           "miles",
		TargetProgress: 100,
	})

	day := time.Date(2025, 3, 12, 7, 0, 0, 0, time.UTC)

	updated, err := service.AccumulateCompletion(ctx, goal.ID, day, 3)
	require.NoError(t, err)
	assert.Equal(t, float64(3), updated.CompletedDates["2025-03-12"])
	assert.Equal(t, 1, updated.StreakDays)

	// Second contribution on the same day adds instead of toggling.
	updated, err = service.AccumulateCompletion(ctx, goal.ID, day, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(7), updated.CompletedDates["2025-03-12"])
	assert.Equal(t, float64(7), updated.CurrentProgress)
	assert.Equal(t, 1, updated.StreakDays, "streak only moves on the first contribution of the day")
}

func TestProgressNeverLeavesBounds(t *testing.T) {
	service, store := newTestGoalService()
	ctx := context.Background()

	goal := store.add(&models.Goal{Title: "Read", Category: "mental", Unit: "books", TargetProgress: 5})

	days := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}

	for _, day := range days {
		_, err := service.ToggleCompletion(ctx, goal.ID.Hex(), day, 4)
		require.NoError(t, err)
	}
	// Undo everything in reverse.
	for _, day := range days {
		updated, err := service.ToggleCompletion(ctx, goal.ID.Hex(), day, 4)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, updated.CurrentProgress, float64(0))
		assert.LessOrEqual(t, updated.CurrentProgress, updated.TargetProgress)
	}
}

func TestCompletedCountsForDate(t *testing.T) {
	service, store := newTestGoalService()
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	key := models.DateKey(day)

	store.add(&models.Goal{Title: "Meditate", Category: "mental", Unit: "sessions", TargetProgress: 30,
		CompletedDates: map[string]float64{key: 1}})
	store.add(&models.Goal{Title: "Run", Category: "physical", Unit: "miles", TargetProgress: 100,
		CompletedDates: map[string]float64{key: 3}})
	store.add(&models.Goal{Title: "Read", Category: "mental", Unit: "books", TargetProgress: 20,
		CompletedDates: map[string]float64{}})

	mental, physical, err := service.CompletedCountsForDate(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 1, mental)
	assert.Equal(t, 1, physical)
}
