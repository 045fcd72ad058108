package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/sirupsen/logrus"
)

// MoodHandler handles HTTP requests related to daily mood check-ins.
type MoodHandler struct {
	Tracker *services.TrackerService
	Service *services.MoodService
}

// NewMoodHandler creates a new instance of MoodHandler.
func NewMoodHandler(tracker *services.TrackerService, moodService *services.MoodService) *MoodHandler {
	return &MoodHandler{
		Tracker: tracker,
		Service: moodService,
	}
}

// LogMoodHandler upserts today's mood sample and recomputes the day's stack.
func (h *MoodHandler) LogMoodHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood         int `json:"mood"`
		Energy       int `json:"energy"`
		Productivity int `json:"productivity"`
		Focus        int `json:"focus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during mood logging")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	sample, err := h.Tracker.LogMood(r.Context(), req.Mood, req.Energy, req.Productivity, req.Focus)
	if err != nil {
		logrus.WithError(err).Warn("Failed to log mood")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logrus.WithField("mood", req.Mood).Info("Mood successfully logged")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sample)
}

// GetTodayMoodHandler returns today's sample, if any.
func (h *MoodHandler) GetTodayMoodHandler(w http.ResponseWriter, r *http.Request) {
	sample, err := h.Service.GetTodaySample(r.Context())
	if err != nil {
		http.Error(w, "No mood sample for today", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sample)
}

// GetMoodSamplesHandler returns all samples ordered by date.
func (h *MoodHandler) GetMoodSamplesHandler(w http.ResponseWriter, r *http.Request) {
	samples, err := h.Service.GetSamples(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch mood samples")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(samples)
}
