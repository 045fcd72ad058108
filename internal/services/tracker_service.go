package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// defaultMood stands in when a day has no mood sample yet.
const defaultMood = 7

// TrackerService composes the goal ledger, attribution rules and wellness
// scoring into the ingest transactions the UI triggers. Each transaction
// runs under one lock so ledger writes, the stack-day upsert and the streak
// recalculation are never interleaved with another action.
type TrackerService struct {
	mu sync.Mutex

	goals       *GoalService
	attribution *AttributionService
	wellness    *WellnessService
	workouts    WorkoutStore
	journal     JournalStore
	moods       MoodStore
	activity    *ActivityService
}

// NewTrackerService creates a new instance of TrackerService.
func NewTrackerService(
	goals *GoalService,
	attribution *AttributionService,
	wellness *WellnessService,
	workouts WorkoutStore,
	journal JournalStore,
	moods MoodStore,
	activity *ActivityService,
) *TrackerService {
	return &TrackerService{
		goals:       goals,
		attribution: attribution,
		wellness:    wellness,
		workouts:    workouts,
		journal:     journal,
		moods:       moods,
		activity:    activity,
	}
}

// IngestWorkout persists a workout, credits matching goals and recomputes
// the stack record for the workout's day.
func (s *TrackerService) IngestWorkout(ctx context.Context, workout *models.Workout) (*models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if workout.Duration <= 0 {
		return nil, fmt.Errorf("workout duration must be positive")
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}
	workout.DateKey = models.DateKey(workout.Date)

	created, err := s.workouts.CreateWorkout(ctx, workout)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to persist workout")
		return nil, fmt.Errorf("failed to save workout: %v", err)
	}

	if err := s.attribution.ApplyWorkout(ctx, created); err != nil {
		return nil, err
	}

	if err := s.recomputeStack(ctx, created.Date, 0); err != nil {
		return nil, err
	}

	_ = s.activity.LogActivity(ctx, "workout_logged", created.ID, fmt.Sprintf("Logged workout: %s", created.Title))

	logrus.WithField("workout_id", created.ID.Hex()).Info("Workout ingested")
	return created, nil
}

// IngestMentalActivity persists a journal/mental-activity entry, credits
// matching goals, captures the entry's mood as today's sample when none
// exists and recomputes the stack record for the entry's day.
func (s *TrackerService) IngestMentalActivity(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Title == "" {
		return nil, fmt.Errorf("entry title is required")
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	entry.DateKey = models.DateKey(entry.Date)

	created, err := s.journal.CreateEntry(ctx, entry)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to persist journal entry")
		return nil, fmt.Errorf("failed to save entry: %v", err)
	}

	if err := s.attribution.ApplyEntry(ctx, created); err != nil {
		return nil, err
	}

	// An entry logged today with a mood becomes the day's sample unless the
	// user already checked in.
	if created.Mood > 0 && created.DateKey == models.DateKey(time.Now()) {
		if _, err := s.moods.GetSampleByDateKey(ctx, created.DateKey); err != nil {
			if err := s.logMoodLocked(ctx, created.Mood, defaultMood, defaultMood, defaultMood); err != nil {
				logger.Log.WithError(err).Warn("Failed to capture entry mood")
			}
		}
	}

	if err := s.recomputeStack(ctx, created.Date, created.Duration); err != nil {
		return nil, err
	}

	_ = s.activity.LogActivity(ctx, "journal_added", created.ID, fmt.Sprintf("Added entry: %s", created.Title))

	logrus.WithField("entry_id", created.ID.Hex()).Info("Mental activity ingested")
	return created, nil
}

// LogMood upserts today's mood sample (last write wins) and recomputes
// today's stack record from the current ledger state.
func (s *TrackerService) LogMood(ctx context.Context, mood, energy, productivity, focus int) (*models.MoodSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, value := range []int{mood, energy, productivity, focus} {
		if value < 1 || value > 10 {
			return nil, fmt.Errorf("mood metrics must be between 1 and 10")
		}
	}

	if err := s.logMoodLocked(ctx, mood, energy, productivity, focus); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.recomputeStack(ctx, now, 0); err != nil {
		return nil, err
	}

	sample, err := s.moods.GetSampleByDateKey(ctx, models.DateKey(now))
	if err != nil {
		return nil, fmt.Errorf("failed to read back mood sample: %v", err)
	}
	return sample, nil
}

// logMoodLocked upserts today's sample. Caller holds the lock.
func (s *TrackerService) logMoodLocked(ctx context.Context, mood, energy, productivity, focus int) error {
	now := time.Now()
	progress, err := s.wellness.DailyProgressScore(ctx, now)
	if err != nil {
		return err
	}

	sample := &models.MoodSample{
		Date:         now,
		DateKey:      models.DateKey(now),
		Mood:         mood,
		Energy:       energy,
		Productivity: productivity,
		Focus:        focus,
		Progress:     progress,
	}

	if err := s.moods.UpsertSample(ctx, sample); err != nil {
		logger.Log.WithError(err).Error("Failed to upsert mood sample")
		return fmt.Errorf("failed to save mood sample: %v", err)
	}
	return nil
}

// recomputeStack rescores a day: gathers that day's mood, workout
// minutes and completed-goal counts, then recalculates the stack record and
// streak. extraMinutes covers a timed mental activity that is not a workout.
func (s *TrackerService) recomputeStack(ctx context.Context, date time.Time, extraMinutes int) error {
	key := models.DateKey(date)

	mood := defaultMood
	if sample, err := s.moods.GetSampleByDateKey(ctx, key); err == nil && sample != nil {
		mood = sample.Mood
	} else if err != nil && err != mongo.ErrNoDocuments {
		logger.Log.WithError(err).WithField("date_key", key).Warn("Failed to fetch mood sample, using default")
	}

	minutes := extraMinutes
	workouts, err := s.workouts.GetWorkoutsByDateKey(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to fetch day workouts: %v", err)
	}
	for _, workout := range workouts {
		minutes += workout.Duration
	}

	mental, physical, err := s.goals.CompletedCountsForDate(ctx, date)
	if err != nil {
		return err
	}

	_, err = s.wellness.CalculateStackDay(ctx, date, mental+physical, mental, physical, mood, minutes)
	return err
}
