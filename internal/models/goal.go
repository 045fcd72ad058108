package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AllowedCategories lists the goal categories the tracker understands.
var AllowedCategories = map[string]bool{
	"mental":   true,
	"physical": true,
}

// Goal is a user-defined target with a unit, cumulative progress and a
// per-day completion history. CompletedDates maps a calendar-day key
// (see DateKey) to the amount logged that day.
type Goal struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Category        string             `bson:"category" json:"category"` // "mental" or "physical"
	Unit            string             `bson:"unit" json:"unit"`         // e.g. "miles", "sessions", "minutes"
	TargetProgress  float64            `bson:"target_progress" json:"target_progress"`
	CurrentProgress float64            `bson:"current_progress" json:"current_progress"`
	DailyTarget     float64            `bson:"daily_target" json:"daily_target"` // 0 excludes the goal from daily scoring
	DueDate         time.Time          `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Color           string             `bson:"color,omitempty" json:"color,omitempty"`
	Priority        float64            `bson:"priority" json:"priority"` // weight in the daily score, defaults to 1
	ActiveDays      []string           `bson:"active_days,omitempty" json:"active_days,omitempty"`
	StreakDays      int                `bson:"streak_days" json:"streak_days"`
	CompletedDates  map[string]float64 `bson:"completed_dates" json:"completed_dates"`
	// MatchTag binds the goal to an activity type ("meditation", "yoga",
	// "breathing", "journal") for auto-attribution. When empty, matching
	// falls back to keywords in the title.
	MatchTag  string    `bson:"match_tag,omitempty" json:"match_tag,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CompletionForDate returns the amount logged for the given day, or 0.
func (g *Goal) CompletionForDate(date time.Time) float64 {
	return g.CompletedDates[DateKey(date)]
}
