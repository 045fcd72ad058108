package services

import (
	"context"
	"testing"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAttribution() (*AttributionService, *GoalService, *fakeGoalStore) {
	store := newFakeGoalStore()
	goals := NewGoalService(store)
	return NewAttributionService(goals), goals, store
}

func TestWorkoutDistanceAttribution(t *testing.T) {
	attribution, _, store := newTestAttribution()
	ctx := context.Background()

	goal := store.add(&models.Goal{
		Title:          "Run 100 miles",
		Category:       "physical",
		Unit:           "miles",
		TargetProgress: 100,
		DailyTarget:    3,
	})

	day := time.Date(2025, 4, 1, 6, 30, 0, 0, time.UTC)
	err := attribution.ApplyWorkout(ctx, &models.Workout{
		Title:    "Morning Run",
		Type:     "Running",
		Date:     day,
		Duration: 45,
		Distance: 5,
	})
	require.NoError(t, err)

	updated := store.goals[goal.ID]
	assert.Equal(t, float64(5), updated.CurrentProgress)
	assert.Equal(t, float64(5), updated.CompletedDates["2025-04-01"])
	assert.Equal(t, 1, updated.StreakDays)
}

func TestWorkoutAttributionClampsProgressButKeepsRawAmount(t *testing.T) {
	attribution, _, store := newTestAttribution()

	goal := store.add(&models.Goal{
		Title:           "Run 100 miles",
		Category:        "physical",
		Unit:            "miles",
		TargetProgress:  100,
		CurrentProgress: 98,
	})

	day := time.Date(2025, 4, 2, 18, 0, 0, 0, time.UTC)
	err := attribution.ApplyWorkout(context.Background(), &models.Workout{
		Title: "Long Run", Type: "Running", Date: day, Duration: 60, Distance: 5,
	})
	require.NoError(t, err)

	updated := store.goals[goal.ID]
	assert.Equal(t, float64(100), updated.CurrentProgress, "progress clamps to target")
	assert.Equal(t, float64(5), updated.CompletedDates["2025-04-02"], "ledger records the full amount")
}

func TestWorkoutFansOutToCaloriesAndSessions(t *testing.T) {
	attribution, _, store := newTestAttribution()

	calorieGoal := store.add(&models.Goal{
		Title: "Burn 5000 calories", Category: "physical", Unit: "calories", TargetProgress: 5000,
	})
	sessionGoal := store.add(&models.Goal{
		Title: "Strength Training", Category: "physical", Unit: "sessions", TargetProgress: 50,
	})
	mentalGoal := store.add(&models.Goal{
		Title: "Daily Meditation", Category: "mental", Unit: "sessions", TargetProgress: 30,
	})

	day := time.Date(2025, 4, 3, 12, 0, 0, 0, time.UTC)
	err := attribution.ApplyWorkout(context.Background(), &models.Workout{
		Title: "HIIT", Type: "HIIT", Date: day, Duration: 45, Calories: 450,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(450), store.goals[calorieGoal.ID].CompletedDates["2025-04-03"])
	assert.Equal(t, float64(1), store.goals[sessionGoal.ID].CompletedDates["2025-04-03"])
	assert.Empty(t, store.goals[mentalGoal.ID].CompletedDates, "mental goals never match workouts")
}

func TestWorkoutWithoutDistanceSkipsMilesGoal(t *testing.T) {
	attribution, _, store := newTestAttribution()

	goal := store.add(&models.Goal{
		Title: "Run 100 miles", Category: "physical", Unit: "miles", TargetProgress: 100,
	})

	err := attribution.ApplyWorkout(context.Background(), &models.Workout{
		Title: "Stretching", Type: "Mobility", Date: time.Now(), Duration: 20,
	})
	require.NoError(t, err)

	assert.Empty(t, store.goals[goal.ID].CompletedDates)
}

func TestJournalEntryCreditsOncePerDay(t *testing.T) {
	attribution, _, store := newTestAttribution()
	ctx := context.Background()

	goal := store.add(&models.Goal{
		Title: "Daily Journal", Category: "mental", Unit: "entries", TargetProgress: 30,
	})

	day := time.Date(2025, 4, 4, 8, 0, 0, 0, time.UTC)
	entry := &models.JournalEntry{Title: "Morning Reflection", Date: day}

	require.NoError(t, attribution.ApplyEntry(ctx, entry))
	assert.Equal(t, float64(1), store.goals[goal.ID].CompletedDates["2025-04-04"])

	// A second entry the same day must not credit again.
	second := &models.JournalEntry{Title: "Evening Notes", Date: day.Add(12 * time.Hour)}
	require.NoError(t, attribution.ApplyEntry(ctx, second))
	assert.Equal(t, float64(1), store.goals[goal.ID].CompletedDates["2025-04-04"])
	assert.Equal(t, 1, store.goals[goal.ID].StreakDays)
}

func TestMeditationMinutesAndSessionGoals(t *testing.T) {
	attribution, _, store := newTestAttribution()

	minutesGoal := store.add(&models.Goal{
		Title: "Daily Meditation", Category: "mental", Unit: "minutes", TargetProgress: 600, DailyTarget: 15,
	})
	sessionGoal := store.add(&models.Goal{
		Title: "Meditate every day", Category: "mental", Unit: "days", TargetProgress: 30,
	})

	day := time.Date(2025, 4, 5, 7, 0, 0, 0, time.UTC)
	entry := &models.JournalEntry{
		Title:    "Calm morning",
		Type:     models.EntryTypeMeditation,
		Date:     day,
		Duration: 20,
	}
	require.NoError(t, attribution.ApplyEntry(context.Background(), entry))

	assert.Equal(t, float64(20), store.goals[minutesGoal.ID].CompletedDates["2025-04-05"],
		"minute goals get the full duration even past the daily target")
	assert.Equal(t, float64(1), store.goals[sessionGoal.ID].CompletedDates["2025-04-05"])
}

func TestYogaAndBreathingKeywordMatching(t *testing.T) {
	attribution, _, store := newTestAttribution()

	yogaGoal := store.add(&models.Goal{
		Title: "Yoga practice", Category: "mental", Unit: "sessions", TargetProgress: 20,
	})
	breathGoal := store.add(&models.Goal{
		Title: "Breathing exercises", Category: "mental", Unit: "minutes", TargetProgress: 300,
	})

	day := time.Date(2025, 4, 6, 19, 0, 0, 0, time.UTC)

	require.NoError(t, attribution.ApplyEntry(context.Background(), &models.JournalEntry{
		Title: "Evening flow", Type: models.EntryTypeYoga, Date: day, Duration: 30,
	}))
	require.NoError(t, attribution.ApplyEntry(context.Background(), &models.JournalEntry{
		Title: "Box breathing", Type: models.EntryTypeBreathing, Date: day, Duration: 10,
	}))

	assert.Equal(t, float64(1), store.goals[yogaGoal.ID].CompletedDates["2025-04-06"])
	assert.Equal(t, float64(10), store.goals[breathGoal.ID].CompletedDates["2025-04-06"])
}

func TestMatchTagOverridesTitleKeywords(t *testing.T) {
	attribution, _, store := newTestAttribution()

	// Tagged goal matches despite its title carrying no keyword.
	tagged := store.add(&models.Goal{
		Title: "Quiet mind", Category: "mental", Unit: "minutes", TargetProgress: 300,
		MatchTag: models.EntryTypeMeditation,
	})
	// A tag pointing elsewhere suppresses the title keyword.
	mismatched := store.add(&models.Goal{
		Title: "Meditation time", Category: "mental", Unit: "minutes", TargetProgress: 300,
		MatchTag: models.EntryTypeYoga,
	})

	day := time.Date(2025, 4, 7, 6, 0, 0, 0, time.UTC)
	require.NoError(t, attribution.ApplyEntry(context.Background(), &models.JournalEntry{
		Title: "Sit", Type: models.EntryTypeMeditation, Date: day, Duration: 15,
	}))

	assert.Equal(t, float64(15), store.goals[tagged.ID].CompletedDates["2025-04-07"])
	assert.Empty(t, store.goals[mismatched.ID].CompletedDates)
}

func TestNoMatchingGoalIsNotAnError(t *testing.T) {
	attribution, _, _ := newTestAttribution()

	err := attribution.ApplyWorkout(context.Background(), &models.Workout{
		Title: "Swim", Type: "Swimming", Date: time.Now(), Duration: 30,
	})
	assert.NoError(t, err)
}
