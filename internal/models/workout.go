package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single logged physical activity. Immutable once created.
type Workout struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Type         string             `bson:"type" json:"type"` // e.g. "Running", "HIIT", "Strength"
	Date         time.Time          `bson:"date" json:"date"`
	DateKey      string             `bson:"date_key" json:"-"`
	Duration     int                `bson:"duration" json:"duration"` // minutes
	Calories     int                `bson:"calories" json:"calories"`
	AvgHeartRate int                `bson:"avg_heart_rate,omitempty" json:"avg_heart_rate,omitempty"`
	Distance     float64            `bson:"distance,omitempty" json:"distance,omitempty"` // miles
	Pace         string             `bson:"pace,omitempty" json:"pace,omitempty"`
	Steps        int                `bson:"steps,omitempty" json:"steps,omitempty"`
	Exercises    []string           `bson:"exercises,omitempty" json:"exercises,omitempty"`
	// GoalID links back to the goal the workout was logged from, if any.
	GoalID    *primitive.ObjectID `bson:"goal_id,omitempty" json:"goal_id,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}
