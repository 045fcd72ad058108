package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WorkoutRepository handles database operations related to workouts
type WorkoutRepository struct {
	collection *mongo.Collection
}

// NewWorkoutRepository creates a new instance of WorkoutRepository
func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{
		collection: db.Collection("workouts"),
	}
}

// CreateWorkout inserts a new workout record
func (r *WorkoutRepository) CreateWorkout(ctx context.Context, workout *models.Workout) (*models.Workout, error) {
	workout.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert workout")
		return nil, fmt.Errorf("failed to insert workout: %v", err)
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		workout.ID = insertedID
	}

	logrus.WithField("workout_id", workout.ID.Hex()).Info("Workout created successfully")
	return workout, nil
}

// GetRecentWorkouts fetches the most recent workouts, newest first
func (r *WorkoutRepository) GetRecentWorkouts(ctx context.Context, limit int64) ([]models.Workout, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workouts: %v", err)
	}
	defer cursor.Close(ctx)

	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %v", err)
	}
	return workouts, nil
}

// GetWorkoutsByDateKey fetches all workouts for a single calendar day
func (r *WorkoutRepository) GetWorkoutsByDateKey(ctx context.Context, dateKey string) ([]models.Workout, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"date_key": dateKey})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workouts for %s: %v", dateKey, err)
	}
	defer cursor.Close(ctx)

	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %v", err)
	}
	return workouts, nil
}

// CountWorkouts returns the total number of logged workouts
func (r *WorkoutRepository) CountWorkouts(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count workouts: %v", err)
	}
	return count, nil
}
