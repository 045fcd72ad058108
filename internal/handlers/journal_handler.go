package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/internal/services"
	"github.com/sirupsen/logrus"
)

// JournalHandler handles HTTP requests related to journal and
// mental-activity entries.
type JournalHandler struct {
	Tracker *services.TrackerService
	Service *services.JournalService
}

// NewJournalHandler creates a new instance of JournalHandler.
func NewJournalHandler(tracker *services.TrackerService, journalService *services.JournalService) *JournalHandler {
	return &JournalHandler{
		Tracker: tracker,
		Service: journalService,
	}
}

var allowedEntryTypes = map[string]bool{
	"":                         true,
	models.EntryTypeJournal:    true,
	models.EntryTypeMeditation: true,
	models.EntryTypeBreathing:  true,
	models.EntryTypeYoga:       true,
}

// CreateEntryHandler ingests a journal or mental-activity entry.
func (h *JournalHandler) CreateEntryHandler(w http.ResponseWriter, r *http.Request) {
	var entry models.JournalEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during entry creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !allowedEntryTypes[entry.Type] {
		http.Error(w, "Invalid entry type", http.StatusBadRequest)
		return
	}
	if entry.Mood != 0 && (entry.Mood < 1 || entry.Mood > 10) {
		http.Error(w, "Mood must be between 1 and 10", http.StatusBadRequest)
		return
	}
	if entry.Duration < 0 {
		http.Error(w, "Duration cannot be negative", http.StatusBadRequest)
		return
	}

	created, err := h.Tracker.IngestMentalActivity(r.Context(), &entry)
	if err != nil {
		logrus.WithError(err).Error("Failed to ingest journal entry")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logrus.WithField("entryID", created.ID.Hex()).Info("Journal entry successfully logged")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

// GetEntriesHandler fetches recent entries, with an optional limit.
func (h *JournalHandler) GetEntriesHandler(w http.ResponseWriter, r *http.Request) {
	limitParam := r.URL.Query().Get("limit")
	var limit int64 = 10 // default limit
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

	entries, err := h.Service.GetRecentEntries(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to fetch journal entries")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// GetTodayEntriesHandler fetches today's entries.
func (h *JournalHandler) GetTodayEntriesHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetTodayEntries(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch today's entries")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
