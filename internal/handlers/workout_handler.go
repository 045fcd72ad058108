package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/sirupsen/logrus"
)

// WorkoutHandler handles HTTP requests related to workouts.
type WorkoutHandler struct {
	Tracker *services.TrackerService
	Service *services.WorkoutService
}

// NewWorkoutHandler creates a new instance of WorkoutHandler.
func NewWorkoutHandler(tracker *services.TrackerService, workoutService *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		Tracker: tracker,
		Service: workoutService,
	}
}

// CreateWorkoutHandler ingests a new workout: the record is saved, matching
// goals are credited and the day's stack record is recomputed in one step.
func (h *WorkoutHandler) CreateWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during workout creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if workout.Title == "" {
		http.Error(w, "Workout title is required", http.StatusBadRequest)
		return
	}

	created, err := h.Tracker.IngestWorkout(r.Context(), &workout)
	if err != nil {
		logrus.WithError(err).Error("Failed to ingest workout")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logrus.WithField("workoutID", created.ID.Hex()).Info("Workout successfully logged")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

// GetWorkoutsHandler fetches recent workouts, with an optional limit.
func (h *WorkoutHandler) GetWorkoutsHandler(w http.ResponseWriter, r *http.Request) {
	limitParam := r.URL.Query().Get("limit")
	var limit int64 = 20 // default limit
	log := logrus.WithField("defaultLimit", limit)

	if limitParam != "" {
		parsed, err := strconv.ParseInt(limitParam, 10, 64)
		if err == nil {
			limit = parsed
			log = log.WithField("parsedLimit", limit)
		} else {
			log.WithError(err).Warn("Invalid limit query param")
		}
	}

	workouts, err := h.Service.GetRecentWorkouts(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to fetch workouts")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(workouts)
}

// GetTodayWorkoutsHandler fetches today's workouts along with their totals.
func (h *WorkoutHandler) GetTodayWorkoutsHandler(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.Service.GetTodayWorkouts(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch today's workouts")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	calories, minutes, err := h.Service.TodayTotals(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to compute today's totals")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"workouts":       workouts,
		"total_calories": calories,
		"total_minutes":  minutes,
	})
}
