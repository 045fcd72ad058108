package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mental activity entry types.
const (
	EntryTypeJournal    = "journal"
	EntryTypeMeditation = "meditation"
	EntryTypeBreathing  = "breathing"
	EntryTypeYoga       = "yoga"
)

// JournalEntry is a journal or mental-activity record (meditation, breathing,
// yoga sessions are logged through the same model with a Type and Duration).
// Immutable once created.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Date      time.Time          `bson:"date" json:"date"`
	DateKey   string             `bson:"date_key" json:"-"`
	Mood      int                `bson:"mood,omitempty" json:"mood,omitempty"` // 1-10, optional
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Type      string             `bson:"type,omitempty" json:"type,omitempty"`         // empty means plain journal
	Duration  int                `bson:"duration,omitempty" json:"duration,omitempty"` // minutes, for timed activities
	Thoughts  string             `bson:"thoughts,omitempty" json:"thoughts,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
