package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
)

// MoodService exposes read-side queries over daily mood samples. The daily
// check-in itself goes through TrackerService.LogMood.
type MoodService struct {
	store MoodStore
}

// NewMoodService creates a new instance of MoodService.
func NewMoodService(store MoodStore) *MoodService {
	return &MoodService{store: store}
}

// GetTodaySample retrieves today's sample, if any.
func (s *MoodService) GetTodaySample(ctx context.Context) (*models.MoodSample, error) {
	sample, err := s.store.GetSampleByDateKey(ctx, models.DateKey(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("no mood sample for today: %v", err)
	}
	return sample, nil
}

// GetSamples retrieves all samples ordered by date.
func (s *MoodService) GetSamples(ctx context.Context) ([]models.MoodSample, error) {
	samples, err := s.store.GetSamples(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch mood samples")
		return nil, fmt.Errorf("failed to fetch mood samples: %v", err)
	}
	return samples, nil
}

// AverageMood computes the mean mood over all samples, 0 with no samples.
func (s *MoodService) AverageMood(ctx context.Context) (float64, error) {
	samples, err := s.GetSamples(ctx)
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, nil
	}

	sum := 0
	for _, sample := range samples {
		sum += sample.Mood
	}
	return float64(sum) / float64(len(samples)), nil
}
