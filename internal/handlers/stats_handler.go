package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/sirupsen/logrus"
)

// StatsHandler serves the aggregate summary shown on the profile screen.
type StatsHandler struct {
	Wellness *services.WellnessService
	Moods    *services.MoodService
	Workouts *services.WorkoutService
	Journal  *services.JournalService
}

// NewStatsHandler creates a new instance of StatsHandler.
func NewStatsHandler(wellness *services.WellnessService, moods *services.MoodService, workouts *services.WorkoutService, journal *services.JournalService) *StatsHandler {
	return &StatsHandler{
		Wellness: wellness,
		Moods:    moods,
		Workouts: workouts,
		Journal:  journal,
	}
}

// GetStatsHandler returns streak, average mood and record totals.
func (h *StatsHandler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	avgMood, err := h.Moods.AverageMood(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to compute average mood")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalWorkouts, err := h.Workouts.CountWorkouts(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to count workouts")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalEntries, err := h.Journal.CountEntries(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to count journal entries")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"current_streak": h.Wellness.CurrentStreak(),
		"stack_quality":  h.Wellness.StackQuality(),
		"avg_mood":       avgMood,
		"total_workouts": totalWorkouts,
		"total_entries":  totalEntries,
	})
}
