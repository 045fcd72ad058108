package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/sirupsen/logrus"
)

// InsightHandler handles HTTP requests for insights and the activity feed.
type InsightHandler struct {
	Service         *services.InsightService
	ActivityService *services.ActivityService
}

// NewInsightHandler creates a new instance of InsightHandler.
func NewInsightHandler(insightService *services.InsightService, activityService *services.ActivityService) *InsightHandler {
	return &InsightHandler{
		Service:         insightService,
		ActivityService: activityService,
	}
}

// GetInsightsHandler fetches recent insights.
func (h *InsightHandler) GetInsightsHandler(w http.ResponseWriter, r *http.Request) {
	var limit int64 = 10
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if parsed, err := strconv.ParseInt(limitParam, 10, 64); err == nil {
			limit = parsed
		}
	}

	insights, err := h.Service.GetRecentInsights(r.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch insights")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(insights)
}

// GetActivityFeedHandler fetches recent activity feed events.
func (h *InsightHandler) GetActivityFeedHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil {
			limit = parsed
		}
	}

	activities, err := h.ActivityService.GetRecentActivities(r.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch activity feed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}
