package services

import (
	"context"
	"testing"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackerFixture struct {
	tracker   *TrackerService
	goals     *GoalService
	wellness  *WellnessService
	goalStore *fakeGoalStore
	stacks    *fakeStackStore
	moods     *fakeMoodStore
	workouts  *fakeWorkoutStore
	journal   *fakeJournalStore
	feed      *fakeActivityStore
}

func newTrackerFixture() *trackerFixture {
	goalStore := newFakeGoalStore()
	stacks := &fakeStackStore{}
	moods := newFakeMoodStore()
	workouts := &fakeWorkoutStore{}
	journal := &fakeJournalStore{}
	feed := &fakeActivityStore{}

	goals := NewGoalService(goalStore)
	attribution := NewAttributionService(goals)
	wellness := NewWellnessService(stacks, goals, 4)
	activity := NewActivityService(feed)
	tracker := NewTrackerService(goals, attribution, wellness, workouts, journal, moods, activity)

	return &trackerFixture{
		tracker:   tracker,
		goals:     goals,
		wellness:  wellness,
		goalStore: goalStore,
		stacks:    stacks,
		moods:     moods,
		workouts:  workouts,
		journal:   journal,
		feed:      feed,
	}
}

func TestIngestWorkoutCreditsGoalAndScoresDay(t *testing.T) {
	f := newTrackerFixture()
	ctx := context.Background()

	goal := f.goalStore.add(&models.Goal{
		Title: "Run 100 miles", Category: "physical", Unit: "miles",
		TargetProgress: 100, DailyTarget: 3,
	})

	workoutDay := time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC)
	created, err := f.tracker.IngestWorkout(ctx, &models.Workout{
		Title: "Morning Run", Type: "Running", Date: workoutDay, Duration: 45, Distance: 5,
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	// Ledger updated through attribution.
	updated := f.goalStore.goals[goal.ID]
	assert.Equal(t, float64(5), updated.CurrentProgress)
	assert.Equal(t, float64(5), updated.CompletedDates["2025-06-02"])

	// Stack day recorded: one physical goal only, so the day is not earned.
	days, err := f.stacks.GetStackDays(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.False(t, days[0].Completed)
	// 1/4*0.5 + 7/10*0.3 (default mood) + 45/60*0.2
	assert.InDelta(t, 0.485, days[0].Intensity, 0.0001)

	// Streak is fresh after the transaction, and the feed saw the event.
	assert.Equal(t, 0, f.wellness.CurrentStreak())
	assert.Len(t, f.feed.activities, 1)
}

func TestMentalPlusPhysicalEarnsStackDay(t *testing.T) {
	f := newTrackerFixture()
	ctx := context.Background()

	f.goalStore.add(&models.Goal{
		Title: "Run 100 miles", Category: "physical", Unit: "miles",
		TargetProgress: 100, DailyTarget: 3,
	})
	f.goalStore.add(&models.Goal{
		Title: "Daily Meditation", Category: "mental", Unit: "minutes",
		TargetProgress: 600, DailyTarget: 15,
	})

	activityDay := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)

	_, err := f.tracker.IngestMentalActivity(ctx, &models.JournalEntry{
		Title: "Sit", Type: models.EntryTypeMeditation, Date: activityDay, Duration: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, f.wellness.CurrentStreak(), "one mental goal alone does not earn the day")

	_, err = f.tracker.IngestWorkout(ctx, &models.Workout{
		Title: "Run", Type: "Running", Date: activityDay, Duration: 30, Distance: 4,
	})
	require.NoError(t, err)

	days, err := f.stacks.GetStackDays(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.True(t, days[0].Completed, "mental + physical earns the stack day")
	assert.Equal(t, 1, f.wellness.CurrentStreak())
}

func TestIngestWorkoutRejectsNonPositiveDuration(t *testing.T) {
	f := newTrackerFixture()

	_, err := f.tracker.IngestWorkout(context.Background(), &models.Workout{
		Title: "Ghost workout", Type: "Running",
	})
	assert.Error(t, err)
	assert.Empty(t, f.workouts.workouts)
}

func TestIngestMentalActivityCapturesTodayMood(t *testing.T) {
	f := newTrackerFixture()
	ctx := context.Background()

	_, err := f.tracker.IngestMentalActivity(ctx, &models.JournalEntry{
		Title: "Morning Reflection", Content: "Feeling focused.", Mood: 8,
	})
	require.NoError(t, err)

	sample, err := f.moods.GetSampleByDateKey(ctx, models.DateKey(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 8, sample.Mood)
	assert.Equal(t, 7, sample.Energy, "other metrics default")
}

func TestIngestMentalActivityKeepsExistingSample(t *testing.T) {
	f := newTrackerFixture()
	ctx := context.Background()

	_, err := f.tracker.LogMood(ctx, 5, 6, 7, 8)
	require.NoError(t, err)

	_, err = f.tracker.IngestMentalActivity(ctx, &models.JournalEntry{
		Title: "Evening Notes", Mood: 9,
	})
	require.NoError(t, err)

	sample, err := f.moods.GetSampleByDateKey(ctx, models.DateKey(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 5, sample.Mood, "an explicit check-in is not overwritten by an entry mood")
}

func TestLogMoodUpsertsSampleWithProgress(t *testing.T) {
	f := newTrackerFixture()
	ctx := context.Background()

	goal := f.goalStore.add(&models.Goal{
		Title: "Daily Meditation", Category: "mental", Unit: "minutes",
		TargetProgress: 600, DailyTarget: 20,
	})
	goal.CompletedDates[models.DateKey(time.Now())] = 10 // 50% of today's target

	sample, err := f.tracker.LogMood(ctx, 8, 7, 6, 9)
	require.NoError(t, err)
	assert.Equal(t, 8, sample.Mood)
	assert.InDelta(t, 5.0, sample.Progress, 0.0001)

	// Last write wins for the same day.
	sample, err = f.tracker.LogMood(ctx, 4, 4, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, sample.Mood)

	samples, err := f.moods.GetSamples(ctx)
	require.NoError(t, err)
	assert.Len(t, samples, 1)
}

func TestLogMoodValidatesRange(t *testing.T) {
	f := newTrackerFixture()

	_, err := f.tracker.LogMood(context.Background(), 0, 5, 5, 5)
	assert.Error(t, err)

	_, err = f.tracker.LogMood(context.Background(), 5, 11, 5, 5)
	assert.Error(t, err)
}

func TestSameDayWorkoutMinutesAccumulateInIntensity(t *testing.T) {
	f := newTrackerFixture()
	ctx := context.Background()

	workoutDay := time.Date(2025, 6, 4, 6, 0, 0, 0, time.UTC)

	_, err := f.tracker.IngestWorkout(ctx, &models.Workout{
		Title: "Run", Type: "Running", Date: workoutDay, Duration: 30,
	})
	require.NoError(t, err)
	_, err = f.tracker.IngestWorkout(ctx, &models.Workout{
		Title: "Lift", Type: "Strength", Date: workoutDay, Duration: 40,
	})
	require.NoError(t, err)

	days, err := f.stacks.GetStackDays(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	// No goals completed, default mood: 0 + 0.7*0.3 + min(70/60,1)*0.2
	assert.InDelta(t, 0.41, days[0].Intensity, 0.0001)
}
