package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a feed event describing something the user did.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      string             `bson:"type" json:"type"`           // e.g. "workout_logged", "goal_created"
	TargetID  primitive.ObjectID `bson:"target_id" json:"target_id"` // the ID of the workout, goal, etc.
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Message   string             `bson:"message" json:"message"`
}
