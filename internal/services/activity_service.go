package services

import (
	"context"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityService records feed events for the recent-activity view.
type ActivityService struct {
	store ActivityStore
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// LogActivity records a feed event
func (s *ActivityService) LogActivity(ctx context.Context, actionType string, targetID primitive.ObjectID, message string) error {
	activity := &models.Activity{
		Type:      actionType,
		TargetID:  targetID,
		Message:   message,
		Timestamp: time.Now(),
	}

	err := s.store.CreateActivity(ctx, activity)
	if err != nil {
		logrus.WithError(err).Error("Failed to log activity in service")
		return err
	}

	logrus.WithField("action_type", actionType).Info("Activity logged successfully")
	return nil
}

// GetRecentActivities returns the newest feed events
func (s *ActivityService) GetRecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	return s.store.GetRecentActivities(ctx, limit)
}
