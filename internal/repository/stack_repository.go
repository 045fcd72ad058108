package repository

import (
	"context"
	"fmt"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StackRepository handles database operations related to stack days
type StackRepository struct {
	collection *mongo.Collection
}

// NewStackRepository creates a new instance of StackRepository
func NewStackRepository(db *mongo.Database) *StackRepository {
	return &StackRepository{
		collection: db.Collection("stack_days"),
	}
}

// UpsertStackDay replaces the record for the day, inserting if absent
func (r *StackRepository) UpsertStackDay(ctx context.Context, day *models.StackDay) error {
	filter := bson.M{"date_key": day.DateKey}
	update := bson.M{"$set": bson.M{
		"date":      day.Date,
		"date_key":  day.DateKey,
		"completed": day.Completed,
		"intensity": day.Intensity,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		logrus.WithError(err).WithField("date_key", day.DateKey).Error("Failed to upsert stack day")
		return fmt.Errorf("failed to upsert stack day: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"date_key":  day.DateKey,
		"completed": day.Completed,
	}).Info("Stack day upserted")
	return nil
}

// GetStackDays fetches all stack days ordered by date descending
func (r *StackRepository) GetStackDays(ctx context.Context) ([]models.StackDay, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stack days: %v", err)
	}
	defer cursor.Close(ctx)

	var days []models.StackDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("failed to decode stack days: %v", err)
	}
	return days, nil
}
