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

// MoodRepository handles database operations related to daily mood samples
type MoodRepository struct {
	collection *mongo.Collection
}

// NewMoodRepository creates a new instance of MoodRepository
func NewMoodRepository(db *mongo.Database) *MoodRepository {
	return &MoodRepository{
		collection: db.Collection("mood_samples"),
	}
}

// UpsertSample replaces the sample for the day, inserting if absent.
// One sample per calendar day, last write wins.
func (r *MoodRepository) UpsertSample(ctx context.Context, sample *models.MoodSample) error {
	filter := bson.M{"date_key": sample.DateKey}
	update := bson.M{"$set": bson.M{
		"date":         sample.Date,
		"date_key":     sample.DateKey,
		"mood":         sample.Mood,
		"energy":       sample.Energy,
		"productivity": sample.Productivity,
		"focus":        sample.Focus,
		"progress":     sample.Progress,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		logrus.WithError(err).WithField("date_key", sample.DateKey).Error("Failed to upsert mood sample")
		return fmt.Errorf("failed to upsert mood sample: %v", err)
	}

	logrus.WithField("date_key", sample.DateKey).Info("Mood sample upserted")
	return nil
}

// GetSampleByDateKey fetches the sample for a single calendar day
func (r *MoodRepository) GetSampleByDateKey(ctx context.Context, dateKey string) (*models.MoodSample, error) {
	var sample models.MoodSample
	err := r.collection.FindOne(ctx, bson.M{"date_key": dateKey}).Decode(&sample)
	if err != nil {
		return nil, err
	}
	return &sample, nil
}

// GetSamples fetches all samples ordered by date ascending
func (r *MoodRepository) GetSamples(ctx context.Context) ([]models.MoodSample, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mood samples: %v", err)
	}
	defer cursor.Close(ctx)

	var samples []models.MoodSample
	if err := cursor.All(ctx, &samples); err != nil {
		return nil, fmt.Errorf("failed to decode mood samples: %v", err)
	}
	return samples, nil
}
