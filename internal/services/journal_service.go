package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/ayan-dev/lifestack/pkg/logger"
)

// JournalService exposes read-side queries over journal entries. Writes go
// through TrackerService.
type JournalService struct {
	store JournalStore
}

// NewJournalService creates a new instance of JournalService.
func NewJournalService(store JournalStore) *JournalService {
	return &JournalService{store: store}
}

// GetRecentEntries retrieves the newest entries up to the limit.
func (s *JournalService) GetRecentEntries(ctx context.Context, limit int64) ([]models.JournalEntry, error) {
	entries, err := s.store.GetRecentEntries(ctx, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch recent entries")
		return nil, fmt.Errorf("failed to fetch entries: %v", err)
	}
	return entries, nil
}

// GetTodayEntries retrieves all entries logged today.
func (s *JournalService) GetTodayEntries(ctx context.Context) ([]models.JournalEntry, error) {
	entries, err := s.store.GetEntriesByDateKey(ctx, models.DateKey(time.Now()))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch today's entries")
		return nil, fmt.Errorf("failed to fetch today's entries: %v", err)
	}
	return entries, nil
}

// CountEntries returns the total number of journal entries.
func (s *JournalService) CountEntries(ctx context.Context) (int64, error) {
	return s.store.CountEntries(ctx)
}
