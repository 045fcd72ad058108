package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/ayan-dev/lifestack/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// GoalHandler handles HTTP requests related to goals.
type GoalHandler struct {
	Service         *services.GoalService
	ActivityService *services.ActivityService
}

// NewGoalHandler creates a new instance of GoalHandler.
func NewGoalHandler(goalService *services.GoalService, activityService *services.ActivityService) *GoalHandler {
	return &GoalHandler{
		Service:         goalService,
		ActivityService: activityService,
	}
}

// CreateGoalHandler handles the creation of a new goal.
func (h *GoalHandler) CreateGoalHandler(w http.ResponseWriter, r *http.Request) {
	var goal models.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during goal creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Validate & Parse Due Date (Optional)
	if !goal.DueDate.IsZero() && goal.DueDate.Before(time.Now()) {
		logrus.Warn("Attempt to set a past due date for goal")
		http.Error(w, "Due date cannot be in the past", http.StatusBadRequest)
		return
	}

	if !models.AllowedCategories[goal.Category] {
		logrus.Warn("Invalid category provided: ", goal.Category)
		http.Error(w, "Invalid category", http.StatusBadRequest)
		return
	}

	createdGoal, err := h.Service.CreateGoal(r.Context(), &goal)
	if err != nil {
		logrus.WithError(err).Error("Failed to create goal")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_ = h.ActivityService.LogActivity(r.Context(), "goal_created", createdGoal.ID, fmt.Sprintf("Created goal: %s", createdGoal.Title))

	logrus.WithField("goalID", createdGoal.ID.Hex()).Info("Goal successfully created")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createdGoal)
}

// GetGoalHandler handles fetching a single goal by its ID.
func (h *GoalHandler) GetGoalHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalID := vars["id"]

	goal, err := h.Service.GetGoal(r.Context(), goalID)
	if err != nil || goal == nil {
		logrus.WithField("goalID", goalID).Warn("Goal not found")
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}

// GetGoalsHandler handles fetching all goals with an optional category filter.
func (h *GoalHandler) GetGoalsHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	log := logrus.WithField("category", category)

	goals, err := h.Service.GetGoals(r.Context(), category)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve goals")
		http.Error(w, "Failed to retrieve goals", http.StatusInternalServerError)
		return
	}

	log.WithField("goalCount", len(goals)).Info("Goals fetched successfully")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goals)
}

// UpdateGoalHandler handles updating an existing goal's descriptive fields.
// Progress, completion history and streaks are owned by the ledger and are
// preserved from the stored goal.
func (h *GoalHandler) UpdateGoalHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalID := vars["id"]
	log := logrus.WithField("goalID", goalID)

	existingGoal, err := h.Service.GetGoal(r.Context(), goalID)
	if err != nil || existingGoal == nil {
		log.Warn("Goal not found during update")
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	var updatedGoal models.Goal
	if err := json.NewDecoder(r.Body).Decode(&updatedGoal); err != nil {
		log.WithError(err).Warn("Invalid update payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !updatedGoal.DueDate.IsZero() && updatedGoal.DueDate.Before(time.Now()) {
		http.Error(w, "Due date cannot be in the past", http.StatusBadRequest)
		return
	}

	if updatedGoal.Category != "" && !models.AllowedCategories[updatedGoal.Category] {
		http.Error(w, "Invalid category", http.StatusBadRequest)
		return
	}

	// Ledger-owned fields are never overwritten through this endpoint.
	updatedGoal.ID = existingGoal.ID
	updatedGoal.CurrentProgress = existingGoal.CurrentProgress
	updatedGoal.CompletedDates = existingGoal.CompletedDates
	updatedGoal.StreakDays = existingGoal.StreakDays
	updatedGoal.CreatedAt = existingGoal.CreatedAt

	updatedGoalData, err := h.Service.UpdateGoal(r.Context(), goalID, &updatedGoal)
	if err != nil {
		log.WithError(err).Error("Failed to update goal")
		http.Error(w, "Failed to update goal", http.StatusInternalServerError)
		return
	}

	_ = h.ActivityService.LogActivity(r.Context(), "goal_updated", updatedGoal.ID, fmt.Sprintf("Updated goal: %s", updatedGoal.Title))

	log.Info("Goal successfully updated")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updatedGoalData)
}

// DeleteGoalHandler handles deleting a goal by its ID.
func (h *GoalHandler) DeleteGoalHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalID := vars["id"]
	log := logrus.WithField("goalID", goalID)

	goal, err := h.Service.GetGoal(r.Context(), goalID)
	if err != nil || goal == nil {
		log.WithError(err).Warn("Goal not found or fetch failed")
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	if err := h.Service.DeleteGoal(r.Context(), goalID); err != nil {
		log.WithError(err).Error("Failed to delete goal")
		http.Error(w, "Failed to delete goal", http.StatusInternalServerError)
		return
	}

	_ = h.ActivityService.LogActivity(r.Context(), "goal_deleted", goal.ID, fmt.Sprintf("Deleted goal: %s", goal.Title))

	log.Info("Goal deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// ToggleCompletionHandler records or undoes a day's completion for a goal.
func (h *GoalHandler) ToggleCompletionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalID := vars["id"]
	log := logrus.WithField("goalID", goalID)

	var req struct {
		Date   string  `json:"date"` // YYYY-MM-DD, defaults to today
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid toggle payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	date := time.Now()
	if req.Date != "" {
		parsed, err := models.ParseDateKey(req.Date)
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	goal, err := h.Service.ToggleCompletion(r.Context(), goalID, date, req.Amount)
	if err != nil {
		log.WithError(err).Warn("Failed to toggle goal completion")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.WithField("dateKey", models.DateKey(date)).Info("Goal completion toggled")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}

// GetCompletionHandler returns the recorded amount for a goal on a day.
func (h *GoalHandler) GetCompletionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	goalID := vars["id"]

	date := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := models.ParseDateKey(dateParam)
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	amount, err := h.Service.CompletionForDate(r.Context(), goalID, date)
	if err != nil {
		logger.Log.WithField("goalID", goalID).WithError(err).Warn("Goal not found for completion query")
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"date":   models.DateKey(date),
		"amount": amount,
	})
}
