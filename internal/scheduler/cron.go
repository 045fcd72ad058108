package cron

import (
	"context"

	"github.com/ayan-dev/lifestack/internal/jobs"
	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartCronJobs wires the recurring background work: the streak is
// re-derived when a new calendar day starts, and the daily scan produces
// insights every hour.
func StartCronJobs(wellnessService *services.WellnessService, scan *jobs.DailyScan) {
	c := cron.New()

	// New calendar day: re-derive the streak from stored stack days
	c.AddFunc("@midnight", func() {
		if _, err := wellnessService.RecalculateStreak(context.Background()); err != nil {
			logrus.WithError(err).Error("RecalculateStreak failed")
		}
	})

	// Due-soon goals and streak milestones
	c.AddFunc("@hourly", func() {
		if err := scan.Run(context.Background()); err != nil {
			logrus.WithError(err).Error("Daily scan failed")
		}
	})

	c.Start()
}
