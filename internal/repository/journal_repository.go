package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ayan-dev/lifestack/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JournalRepository handles database operations related to journal entries
type JournalRepository struct {
	collection *mongo.Collection
}

// NewJournalRepository creates a new instance of JournalRepository
func NewJournalRepository(db *mongo.Database) *JournalRepository {
	return &JournalRepository{
		collection: db.Collection("journal_entries"),
	}
}

// CreateEntry inserts a new journal entry
func (r *JournalRepository) CreateEntry(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	entry.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert journal entry")
		return nil, fmt.Errorf("failed to insert journal entry: %v", err)
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = insertedID
	}

	logrus.WithField("entry_id", entry.ID.Hex()).Info("Journal entry created successfully")
	return entry, nil
}

// GetRecentEntries fetches the most recent entries, newest first
func (r *JournalRepository) GetRecentEntries(ctx context.Context, limit int64) ([]models.JournalEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %v", err)
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode journal entries: %v", err)
	}
	return entries, nil
}

// GetEntriesByDateKey fetches all entries for a single calendar day
func (r *JournalRepository) GetEntriesByDateKey(ctx context.Context, dateKey string) ([]models.JournalEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"date_key": dateKey})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries for %s: %v", dateKey, err)
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode journal entries: %v", err)
	}
	return entries, nil
}

// CountEntries returns the total number of journal entries
func (r *JournalRepository) CountEntries(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %v", err)
	}
	return count, nil
}
