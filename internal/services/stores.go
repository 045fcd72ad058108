package services

import (
	"context"

	"github.com/ayan-dev/lifestack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces decouple the services from the Mongo repositories so the
// rules engine can be exercised against in-memory fakes. The repository
// package implements each of these.

type GoalStore interface {
	CreateGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	GetGoalByID(ctx context.Context, id primitive.ObjectID) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id primitive.ObjectID, goal *models.Goal) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id primitive.ObjectID) error
	GetGoals(ctx context.Context, category string) ([]models.Goal, error)
}

type WorkoutStore interface {
	CreateWorkout(ctx context.Context, workout *models.Workout) (*models.Workout, error)
	GetRecentWorkouts(ctx context.Context, limit int64) ([]models.Workout, error)
	GetWorkoutsByDateKey(ctx context.Context, dateKey string) ([]models.Workout, error)
	CountWorkouts(ctx context.Context) (int64, error)
}

type JournalStore interface {
	CreateEntry(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetRecentEntries(ctx context.Context, limit int64) ([]models.JournalEntry, error)
	GetEntriesByDateKey(ctx context.Context, dateKey string) ([]models.JournalEntry, error)
	CountEntries(ctx context.Context) (int64, error)
}

type MoodStore interface {
	UpsertSample(ctx context.Context, sample *models.MoodSample) error
	GetSampleByDateKey(ctx context.Context, dateKey string) (*models.MoodSample, error)
	GetSamples(ctx context.Context) ([]models.MoodSample, error)
}

type StackStore interface {
	UpsertStackDay(ctx context.Context, day *models.StackDay) error
	GetStackDays(ctx context.Context) ([]models.StackDay, error)
}

type InsightStore interface {
	CreateInsight(ctx context.Context, insight *models.Insight) error
	GetRecentInsights(ctx context.Context, limit int64) ([]models.Insight, error)
}

type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *models.Activity) error
	GetRecentActivities(ctx context.Context, limit int) ([]models.Activity, error)
}
