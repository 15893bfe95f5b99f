package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"claimconnect/internal/model"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	GetByLeadID(ctx context.Context, leadID string) (*model.Lead, error)
	MarkCertClaimed(ctx context.Context, leadID string) error
	MarkForwarded(ctx context.Context, leadID string) error
	ListRecent(ctx context.Context, limit int64) ([]*model.Lead, error)
}

type leadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepository(client *mongo.Client, dbName string) LeadRepository {
	db := client.Database(dbName)
	return &leadRepository{
		collection: db.Collection("leads"),
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, lead)
	return err
}

func (r *leadRepository) GetByLeadID(ctx context.Context, leadID string) (*model.Lead, error) {
	var lead model.Lead
	err := r.collection.FindOne(ctx, bson.M{"lead_id": leadID}).Decode(&lead)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) MarkCertClaimed(ctx context.Context, leadID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"lead_id": leadID}, bson.M{"$set": bson.M{"cert_claimed": true}})
	return err
}

func (r *leadRepository) MarkForwarded(ctx context.Context, leadID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"lead_id": leadID}, bson.M{"$set": bson.M{"forwarded": true}})
	return err
}

func (r *leadRepository) ListRecent(ctx context.Context, limit int64) ([]*model.Lead, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []*model.Lead
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}
