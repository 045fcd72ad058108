package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StackDay records whether a calendar day counted toward the streak and how
// "full" the day was. One record per day, re-upserted as activity arrives.
type StackDay struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date      time.Time          `bson:"date" json:"date"`
	DateKey   string             `bson:"date_key" json:"-"`
	Completed bool               `bson:"completed" json:"completed"`
	Intensity float64            `bson:"intensity" json:"intensity"` // 0..1
}
