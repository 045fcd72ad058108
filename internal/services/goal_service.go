package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalService owns the goal ledger: every mutation of CurrentProgress,
// CompletedDates and StreakDays goes through it.
type GoalService struct {
	store GoalStore
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store}
}

// CreateGoal validates and stores a new goal. Progress, streak and the
// completion history always start empty regardless of what the caller sends.
func (s *GoalService) CreateGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	if goal.Title == "" {
		logger.Log.Warn("Goal title is empty during creation")
		return nil, fmt.Errorf("goal title is required")
	}
	if goal.TargetProgress <= 0 {
		logger.Log.WithField("target", goal.TargetProgress).Warn("Non-positive goal target")
		return nil, fmt.Errorf("goal target must be positive")
	}

	goal.CurrentProgress = 0
	goal.StreakDays = 0
	goal.CompletedDates = map[string]float64{}
	if goal.Priority <= 0 {
		goal.Priority = 1
	}

	createdGoal, err := s.store.CreateGoal(ctx, goal)
	if err != nil {
		logger.Log.WithError(err).Error("Service failed to create goal")
		return nil, fmt.Errorf("failed to create goal: %v", err)
	}

	logger.Log.WithField("goal_id", createdGoal.ID.Hex()).Info("Goal created in service layer")
	return createdGoal, nil
}

// GetGoal retrieves a goal by its ID.
func (s *GoalService) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.WithField("goal_id", id).WithError(err).Warn("Invalid goal ID in GetGoal")
		return nil, fmt.Errorf("invalid goal ID: %v", err)
	}

	goal, err := s.store.GetGoalByID(ctx, objID)
	if err != nil {
		logger.Log.WithField("goal_id", id).WithError(err).Error("Failed to get goal from repository")
		return nil, fmt.Errorf("failed to get goal: %v", err)
	}

	return goal, nil
}

// GetGoals retrieves all goals with an optional category filter.
func (s *GoalService) GetGoals(ctx context.Context, category string) ([]models.Goal, error) {
	goals, err := s.store.GetGoals(ctx, category)
	if err != nil {
		logger.Log.WithField("category", category).WithError(err).Error("Failed to get goals in service")
		return nil, fmt.Errorf("failed to fetch goals: %v", err)
	}
	return goals, nil
}

// UpdateGoal updates an existing goal's descriptive fields.
func (s *GoalService) UpdateGoal(ctx context.Context, id string, updatedGoal *models.Goal) (*models.Goal, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.WithField("goal_id", id).WithError(err).Warn("Invalid goal ID in UpdateGoal")
		return nil, fmt.Errorf("invalid goal ID: %v", err)
	}

	goal, err := s.store.UpdateGoal(ctx, objID, updatedGoal)
	if err != nil {
		logger.Log.WithField("goal_id", id).WithError(err).Error("Failed to update goal")
		return nil, fmt.Errorf("failed to update goal: %v", err)
	}

	logger.Log.WithField("goal_id", id).Info("Goal updated successfully in service layer")
	return goal, nil
}

// DeleteGoal removes a goal.
func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Log.WithField("goal_id", id).WithError(err).Warn("Invalid goal ID in DeleteGoal")
		return fmt.Errorf("invalid goal ID: %v", err)
	}

	if err := s.store.DeleteGoal(ctx, objID); err != nil {
		logger.Log.WithField("goal_id", id).WithError(err).Error("Failed to delete goal")
		return fmt.Errorf("failed to delete goal: %v", err)
	}

	logger.Log.WithField("goal_id", id).Info("Goal deleted successfully in service layer")
	return nil
}

// ToggleCompletion records or undoes a day's completion. If the day already
// has an entry the entry is removed and its amount subtracted from progress;
// otherwise the amount is recorded and progress grows, clamped to the target.
// The per-goal streak counter only moves on a newly recorded day.
func (s *GoalService) ToggleCompletion(ctx context.Context, id string, date time.Time, amount float64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("completion amount must be positive")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid goal ID: %v", err)
	}

	goal, err := s.store.GetGoalByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("goal not found: %v", err)
	}

	key := models.DateKey(date)
	if goal.CompletedDates == nil {
		goal.CompletedDates = map[string]float64{}
	}

	if previous, ok := goal.CompletedDates[key]; ok {
		delete(goal.CompletedDates, key)
		goal.CurrentProgress = math.Max(0, goal.CurrentProgress-previous)
		logger.Log.WithFields(map[string]interface{}{
			"goal_id":  id,
			"date_key": key,
			"amount":   previous,
		}).Info("Goal completion undone")
	} else {
		goal.CompletedDates[key] = amount
		goal.CurrentProgress = math.Min(goal.TargetProgress, goal.CurrentProgress+amount)
		goal.StreakDays++
		logger.Log.WithFields(map[string]interface{}{
			"goal_id":  id,
			"date_key": key,
			"amount":   amount,
		}).Info("Goal completion recorded")
	}

	updated, err := s.store.UpdateGoal(ctx, objID, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to save goal: %v", err)
	}
	return updated, nil
}

// AccumulateCompletion adds to a day's existing bucket. Unlike
// ToggleCompletion this path never undoes: repeated calls for the same day
// keep adding, and the per-goal streak only moves on the first contribution
// of the day. Used by auto-attribution.
func (s *GoalService) AccumulateCompletion(ctx context.Context, id primitive.ObjectID, date time.Time, amount float64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("completion amount must be positive")
	}

	goal, err := s.store.GetGoalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("goal not found: %v", err)
	}

	key := models.DateKey(date)
	if goal.CompletedDates == nil {
		goal.CompletedDates = map[string]float64{}
	}

	existing := goal.CompletedDates[key]
	goal.CompletedDates[key] = existing + amount
	goal.CurrentProgress = math.Min(goal.TargetProgress, goal.CurrentProgress+amount)
	if existing == 0 {
		goal.StreakDays++
	}

	updated, err := s.store.UpdateGoal(ctx, id, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to save goal: %v", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"goal_id":  id.Hex(),
		"date_key": key,
		"amount":   amount,
	}).Info("Goal completion accumulated")
	return updated, nil
}

// CompletionForDate returns the recorded amount for that day, or 0.
func (s *GoalService) CompletionForDate(ctx context.Context, id string, date time.Time) (float64, error) {
	goal, err := s.GetGoal(ctx, id)
	if err != nil {
		return 0, err
	}
	return goal.CompletionForDate(date), nil
}

// CompletedCountsForDate returns how many mental and physical goals have a
// positive completion bucket for the given day. Feeds stack-day scoring.
func (s *GoalService) CompletedCountsForDate(ctx context.Context, date time.Time) (mental, physical int, err error) {
	goals, err := s.store.GetGoals(ctx, "")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch goals: %v", err)
	}

	key := models.DateKey(date)
	for _, goal := range goals {
		if goal.CompletedDates[key] <= 0 {
			continue
		}
		switch goal.Category {
		case "mental":
			mental++
		case "physical":
			physical++
		}
	}
	return mental, physical, nil
}
