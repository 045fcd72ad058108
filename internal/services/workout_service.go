package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
)

// WorkoutService exposes read-side queries over logged workouts. Writes go
// through TrackerService so attribution and scoring stay in one transaction.
type WorkoutService struct {
	store WorkoutStore
}

// NewWorkoutService creates a new instance of WorkoutService.
func NewWorkoutService(store WorkoutStore) *WorkoutService {
	return &WorkoutService{store: store}
}

// GetRecentWorkouts retrieves the newest workouts up to the limit.
func (s *WorkoutService) GetRecentWorkouts(ctx context.Context, limit int64) ([]models.Workout, error) {
	workouts, err := s.store.GetRecentWorkouts(ctx, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch recent workouts")
		return nil, fmt.Errorf("failed to fetch workouts: %v", err)
	}
	return workouts, nil
}

// GetTodayWorkouts retrieves all workouts logged today.
func (s *WorkoutService) GetTodayWorkouts(ctx context.Context) ([]models.Workout, error) {
	workouts, err := s.store.GetWorkoutsByDateKey(ctx, models.DateKey(time.Now()))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch today's workouts")
		return nil, fmt.Errorf("failed to fetch today's workouts: %v", err)
	}
	return workouts, nil
}

// TodayTotals sums calories and minutes over today's workouts.
func (s *WorkoutService) TodayTotals(ctx context.Context) (calories, minutes int, err error) {
	workouts, err := s.GetTodayWorkouts(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, workout := range workouts {
		calories += workout.Calories
		minutes += workout.Duration
	}
	return calories, minutes, nil
}

// CountWorkouts returns the total number of logged workouts.
func (s *WorkoutService) CountWorkouts(ctx context.Context) (int64, error) {
	return s.store.CountWorkouts(ctx)
}
