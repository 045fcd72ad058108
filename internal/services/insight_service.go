package services

import (
	"context"
	"fmt"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
)

// InsightService manages the short observations surfaced on the home screen.
type InsightService struct {
	store InsightStore
}

// NewInsightService creates a new instance of InsightService.
func NewInsightService(store InsightStore) *InsightService {
	return &InsightService{store: store}
}

// AddInsight stores a new insight.
func (s *InsightService) AddInsight(ctx context.Context, text, icon, color string) error {
	if text == "" {
		return fmt.Errorf("insight text is required")
	}

	insight := &models.Insight{
		Text:  text,
		Icon:  icon,
		Color: color,
	}
	if err := s.store.CreateInsight(ctx, insight); err != nil {
		logger.Log.WithError(err).Error("Failed to store insight")
		return err
	}
	return nil
}

// GetRecentInsights retrieves the newest insights up to the limit.
func (s *InsightService) GetRecentInsights(ctx context.Context, limit int64) ([]models.Insight, error) {
	insights, err := s.store.GetRecentInsights(ctx, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch insights")
		return nil, fmt.Errorf("failed to fetch insights: %v", err)
	}
	return insights, nil
}
