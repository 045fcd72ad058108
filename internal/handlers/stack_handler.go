package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/sirupsen/logrus"
)

// StackHandler handles HTTP requests related to stack days, the streak and
// the daily progress score.
type StackHandler struct {
	Wellness *services.WellnessService
}

// NewStackHandler creates a new instance of StackHandler.
func NewStackHandler(wellness *services.WellnessService) *StackHandler {
	return &StackHandler{Wellness: wellness}
}

// GetStackDaysHandler returns all stack records, newest first.
func (h *StackHandler) GetStackDaysHandler(w http.ResponseWriter, r *http.Request) {
	days, err := h.Wellness.StackDays(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch stack days")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(days)
}

// GetStreakHandler returns the current streak and its quality label.
func (h *StackHandler) GetStreakHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"streak":  h.Wellness.CurrentStreak(),
		"quality": h.Wellness.StackQuality(),
	})
}

// GetDailyProgressHandler returns the 0-10 progress score for a day.
func (h *StackHandler) GetDailyProgressHandler(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := models.ParseDateKey(dateParam)
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	score, err := h.Wellness.DailyProgressScore(r.Context(), date)
	if err != nil {
		logrus.WithError(err).Error("Failed to compute daily progress score")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"date":  models.DateKey(date),
		"score": score,
	})
}
