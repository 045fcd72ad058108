package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsightRepository handles database operations related to insights
type InsightRepository struct {
	collection *mongo.Collection
}

// NewInsightRepository creates a new instance of InsightRepository
func NewInsightRepository(db *mongo.Database) *InsightRepository {
	return &InsightRepository{
		collection: db.Collection("insights"),
	}
}

// CreateInsight inserts a new insight
func (r *InsightRepository) CreateInsight(ctx context.Context, insight *models.Insight) error {
	insight.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, insight)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert insight")
		return fmt.Errorf("failed to insert insight: %v", err)
	}
	return nil
}

// GetRecentInsights fetches the most recent insights, newest first
func (r *InsightRepository) GetRecentInsights(ctx context.Context, limit int64) ([]models.Insight, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch insights: %v", err)
	}
	defer cursor.Close(ctx)

	var insights []models.Insight
	if err := cursor.All(ctx, &insights); err != nil {
		return nil, fmt.Errorf("failed to decode insights: %v", err)
	}
	return insights, nil
}
