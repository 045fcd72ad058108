package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/sirupsen/logrus"
)

// DailyScan inspects the current state of goals and the streak and turns
// notable findings into insights for the home screen.
type DailyScan struct {
	GoalService     *services.GoalService
	WellnessService *services.WellnessService
	InsightService  *services.InsightService
}

// NewDailyScan creates a new instance of DailyScan
func NewDailyScan(goalService *services.GoalService, wellnessService *services.WellnessService, insightService *services.InsightService) *DailyScan {
	return &DailyScan{
		GoalService:     goalService,
		WellnessService: wellnessService,
		InsightService:  insightService,
	}
}

// streak milestones worth calling out
var streakMilestones = map[int]string{
	3:  "3-day stack streak — momentum is building",
	7:  "One full week of stack days! 💪",
	14: "Two weeks straight — your stack is amazing",
	30: "30-day streak. Epic consistency 🔥",
}

// Run checks for goals due in the next 24h and streak milestones, and
// records an insight for each finding.
func (d *DailyScan) Run(ctx context.Context) error {
	goals, err := d.GoalService.GetGoals(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to fetch goals: %v", err)
	}

	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)

	for _, goal := range goals {
		if goal.CurrentProgress >= goal.TargetProgress {
			continue
		}
		if !goal.DueDate.IsZero() && goal.DueDate.After(now) && goal.DueDate.Before(tomorrow) {
			text := fmt.Sprintf("Your goal \"%s\" is due by %s — %.0f%% done.",
				goal.Title,
				goal.DueDate.Format("Jan 2"),
				goal.CurrentProgress/goal.TargetProgress*100)
			if err := d.InsightService.AddInsight(ctx, text, "Clock", goal.Color); err != nil {
				logrus.WithError(err).Warn("Failed to record due-soon insight")
			}
		}
	}

	if text, ok := streakMilestones[d.WellnessService.CurrentStreak()]; ok {
		if err := d.InsightService.AddInsight(ctx, text, "Flame", "#F59E0B"); err != nil {
			logrus.WithError(err).Warn("Failed to record streak insight")
		}
	}

	logrus.Info("Daily scan completed")
	return nil
}
