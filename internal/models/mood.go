package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodSample is the daily check-in: one sample per calendar day,
// last write wins. Progress is the derived 0-10 daily progress score
// captured at logging time.
type MoodSample struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date         time.Time          `bson:"date" json:"date"`
	DateKey      string             `bson:"date_key" json:"-"`
	Mood         int                `bson:"mood" json:"mood"`
	Energy       int                `bson:"energy" json:"energy"`
	Productivity int                `bson:"productivity" json:"productivity"`
	Focus        int                `bson:"focus" json:"focus"`
	Progress     float64            `bson:"progress" json:"progress"`
}
