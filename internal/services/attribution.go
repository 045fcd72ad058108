package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
	"github.com/sirupsen/logrus"
)

// AttributionService credits logged workouts and mental activities toward
// matching goals without an explicit user link. A record may fan out to
// several goals; no match at all is not an error.
type AttributionService struct {
	goals *GoalService
}

// NewAttributionService creates a new instance of AttributionService.
func NewAttributionService(goals *GoalService) *AttributionService {
	return &AttributionService{goals: goals}
}

// ApplyWorkout credits a workout to every matching physical goal.
func (s *AttributionService) ApplyWorkout(ctx context.Context, workout *models.Workout) error {
	goals, err := s.goals.GetGoals(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to fetch goals for attribution: %v", err)
	}

	for i := range goals {
		goal := &goals[i]
		amount, ok := matchWorkout(goal, workout)
		if !ok {
			continue
		}

		if _, err := s.goals.AccumulateCompletion(ctx, goal.ID, workout.Date, amount); err != nil {
			logger.Log.WithError(err).WithField("goal_id", goal.ID.Hex()).Error("Failed to apply workout contribution")
			return err
		}

		logrus.WithFields(logrus.Fields{
			"goal_id": goal.ID.Hex(),
			"unit":    goal.Unit,
			"amount":  amount,
		}).Info("Workout attributed to goal")
	}
	return nil
}

// ApplyEntry credits a journal or mental-activity entry to every matching
// mental goal.
func (s *AttributionService) ApplyEntry(ctx context.Context, entry *models.JournalEntry) error {
	goals, err := s.goals.GetGoals(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to fetch goals for attribution: %v", err)
	}

	for i := range goals {
		goal := &goals[i]
		amount, ok := matchEntry(goal, entry)
		if !ok {
			continue
		}

		if _, err := s.goals.AccumulateCompletion(ctx, goal.ID, entry.Date, amount); err != nil {
			logger.Log.WithError(err).WithField("goal_id", goal.ID.Hex()).Error("Failed to apply entry contribution")
			return err
		}

		logrus.WithFields(logrus.Fields{
			"goal_id": goal.ID.Hex(),
			"type":    entry.Type,
			"amount":  amount,
		}).Info("Mental activity attributed to goal")
	}
	return nil
}

// matchWorkout decides whether a physical goal gains from a workout and by
// how much. The rules are mutually exclusive per goal since they key on the
// goal's unit.
func matchWorkout(goal *models.Goal, workout *models.Workout) (float64, bool) {
	if goal.Category != "physical" {
		return 0, false
	}

	switch goal.Unit {
	case "miles":
		if workout.Distance > 0 {
			return workout.Distance, true
		}
	case "calories":
		if workout.Calories > 0 {
			return float64(workout.Calories), true
		}
	case "sessions":
		return 1, true
	}
	return 0, false
}

// sessionUnits are the units that count a timed activity as a single session.
var sessionUnits = map[string]bool{
	"sessions": true,
	"times":    true,
	"days":     true,
}

// matchEntry decides whether a mental goal gains from an activity entry.
// Matching prefers the goal's explicit MatchTag and falls back to keywords
// in the title for goals created before tags existed.
func matchEntry(goal *models.Goal, entry *models.JournalEntry) (float64, bool) {
	if goal.Category != "mental" {
		return 0, false
	}

	entryType := entry.Type
	if entryType == "" {
		entryType = models.EntryTypeJournal
	}

	switch entryType {
	case models.EntryTypeJournal:
		if !goalMatches(goal, models.EntryTypeJournal, "journal", "writ") {
			return 0, false
		}
		if goal.Unit != "entries" && goal.Unit != "times" {
			return 0, false
		}
		// A second journal entry on the same day must not credit again.
		if goal.CompletedDates[models.DateKey(entry.Date)] > 0 {
			return 0, false
		}
		return 1, true

	case models.EntryTypeMeditation:
		return matchTimedActivity(goal, entry, models.EntryTypeMeditation, "meditat")
	case models.EntryTypeYoga:
		return matchTimedActivity(goal, entry, models.EntryTypeYoga, "yoga")
	case models.EntryTypeBreathing:
		return matchTimedActivity(goal, entry, models.EntryTypeBreathing, "breath")
	}
	return 0, false
}

// matchTimedActivity credits minute-unit goals with the entry's duration and
// session-unit goals with a single session.
func matchTimedActivity(goal *models.Goal, entry *models.JournalEntry, tag string, keywords ...string) (float64, bool) {
	if !goalMatches(goal, tag, keywords...) {
		return 0, false
	}
	if goal.Unit == "minutes" && entry.Duration > 0 {
		return float64(entry.Duration), true
	}
	if sessionUnits[goal.Unit] {
		return 1, true
	}
	return 0, false
}

// goalMatches checks the explicit tag first and falls back to title keywords.
func goalMatches(goal *models.Goal, tag string, keywords ...string) bool {
	if goal.MatchTag != "" {
		return goal.MatchTag == tag
	}
	title := strings.ToLower(goal.Title)
	for _, keyword := range keywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}
