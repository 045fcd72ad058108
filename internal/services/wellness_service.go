package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
)

// Intensity formula weights: goal completion, mood and workout minutes.
const (
	intensityGoalWeight    = 0.5
	intensityMoodWeight    = 0.3
	intensityWorkoutWeight = 0.2
)

// WellnessService derives daily metrics from the goal ledger and raw
// activity: the 0-10 daily progress score, the per-day stack record and the
// consecutive-day streak over those records.
type WellnessService struct {
	stacks StackStore
	goals  *GoalService

	// nominalGoals normalizes the goal share of the intensity formula.
	nominalGoals int

	mu            sync.Mutex
	currentStreak int
}

// NewWellnessService creates a new instance of WellnessService.
// nominalGoals falls back to 4 when non-positive.
func NewWellnessService(stacks StackStore, goals *GoalService, nominalGoals int) *WellnessService {
	if nominalGoals <= 0 {
		nominalGoals = 4
	}
	return &WellnessService{
		stacks:       stacks,
		goals:        goals,
		nominalGoals: nominalGoals,
	}
}

// DailyProgressScore computes the weighted average completion percentage of
// all goals with a daily target, rescaled to 0-10 and rounded to one
// decimal. Goals without a daily target are excluded; with no qualifying
// goal the score is 0.
func (s *WellnessService) DailyProgressScore(ctx context.Context, date time.Time) (float64, error) {
	goals, err := s.goals.GetGoals(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch goals for scoring: %v", err)
	}

	key := models.DateKey(date)
	var totalWeightedScore, totalWeight float64

	for _, goal := range goals {
		if goal.DailyTarget <= 0 {
			continue
		}

		completed := goal.CompletedDates[key]
		percentage := math.Min(completed/goal.DailyTarget*100, 100)
		weight := goal.Priority
		if weight <= 0 {
			weight = 1
		}

		totalWeightedScore += percentage * weight
		totalWeight += 100 * weight
	}

	if totalWeight == 0 {
		return 0, nil
	}

	progressPercentage := totalWeightedScore / totalWeight * 100
	return math.Round(progressPercentage) / 10, nil
}

// CalculateStackDay scores a calendar day and upserts its stack record.
// A day is completed with at least two goals done, or one mental plus one
// physical. The streak is recalculated before returning so callers never
// observe a stale value.
func (s *WellnessService) CalculateStackDay(ctx context.Context, date time.Time, goalsCompleted, mentalGoals, physicalGoals, mood, workoutMinutes int) (*models.StackDay, error) {
	completed := goalsCompleted >= 2 || (mentalGoals >= 1 && physicalGoals >= 1)

	intensity := float64(goalsCompleted)/float64(s.nominalGoals)*intensityGoalWeight +
		float64(mood)/10*intensityMoodWeight +
		math.Min(float64(workoutMinutes)/60, 1)*intensityWorkoutWeight
	intensity = math.Min(1, math.Max(0, intensity))

	day := &models.StackDay{
		Date:      date,
		DateKey:   models.DateKey(date),
		Completed: completed,
		Intensity: intensity,
	}

	if err := s.stacks.UpsertStackDay(ctx, day); err != nil {
		logger.Log.WithError(err).WithField("date_key", day.DateKey).Error("Failed to upsert stack day")
		return nil, err
	}

	if _, err := s.RecalculateStreak(ctx); err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"date_key":  day.DateKey,
		"completed": completed,
		"intensity": intensity,
	}).Info("Stack day calculated")
	return day, nil
}

// RecalculateStreak walks stack records newest-first and counts consecutive
// completed days, stopping at the first break.
func (s *WellnessService) RecalculateStreak(ctx context.Context) (int, error) {
	days, err := s.stacks.GetStackDays(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch stack days: %v", err)
	}

	streak := 0
	for _, day := range days {
		if !day.Completed {
			break
		}
		streak++
	}

	s.mu.Lock()
	s.currentStreak = streak
	s.mu.Unlock()

	return streak, nil
}

// CurrentStreak returns the last recalculated streak value.
func (s *WellnessService) CurrentStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStreak
}

// StackQuality labels the current streak.
func (s *WellnessService) StackQuality() string {
	streak := s.CurrentStreak()
	switch {
	case streak >= 30:
		return "Epic Stack! 🔥"
	case streak >= 14:
		return "Amazing Stack! 🌟"
	case streak >= 7:
		return "Great Stack! 💪"
	case streak >= 3:
		return "Good Stack ✓"
	default:
		return "Building Stack..."
	}
}

// StackDays returns all stack records, newest first.
func (s *WellnessService) StackDays(ctx context.Context) ([]models.StackDay, error) {
	return s.stacks.GetStackDays(ctx)
}
