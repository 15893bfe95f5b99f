package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ArchiveRepository stores the raw inbound lead payload before any
// processing, keyed by a dated path so a day's traffic groups together
type ArchiveRepository interface {
	Put(ctx context.Context, leadID string, raw map[string]any) (string, error)
	Get(ctx context.Context, path string) (map[string]any, error)
}

type archiveEntry struct {
	Path       string         `bson:"path"`
	LeadID     string         `bson:"lead_id"`
	Raw        map[string]any `bson:"raw"`
	ArchivedAt time.Time      `bson:"archived_at"`
}

type archiveRepository struct {
	collection *mongo.Collection
}

func NewArchiveRepository(client *mongo.Client, dbName string) ArchiveRepository {
	db := client.Database(dbName)
	return &archiveRepository{
		collection: db.Collection("lead_archive"),
	}
}

// Put stores the raw payload under a YYYY/MM/DD/<leadID>.json path and
// returns the path
func (r *archiveRepository) Put(ctx context.Context, leadID string, raw map[string]any) (string, error) {
	now := time.Now().UTC()
	path := fmt.Sprintf("%s/%s.json", now.Format("2006/01/02"), leadID)
	entry := archiveEntry{
		Path:       path,
		LeadID:     leadID,
		Raw:        raw,
		ArchivedAt: now,
	}
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return path, nil
}

func (r *archiveRepository) Get(ctx context.Context, path string) (map[string]any, error) {
	var entry archiveEntry
	err := r.collection.FindOne(ctx, bson.M{"path": path}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry.Raw, nil
}
