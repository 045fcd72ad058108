package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Insight is a short observation surfaced on the home screen, generated by
// the daily scan job (streak milestones, goals due soon).
type Insight struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text      string             `bson:"text" json:"text"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
