package repository

import (
	"context"
	"time"

	"teampulse-be/internal/database"
	"teampulse-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExportRepository stores the audit trail of generated spreadsheets.
type ExportRepository struct {
	collection *mongo.Collection
}

func NewExportRepository(db *database.MongoDB) *ExportRepository {
	return &ExportRepository{
		collection: db.Exports(),
	}
}

func (r *ExportRepository) Create(ctx context.Context, rec *models.ExportRecord) error {
	rec.CreatedAt = time.Now()
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, rec)
	return err
}

// ListRecent returns the newest export records for a user, newest first.
func (r *ExportRepository) ListRecent(ctx context.Context, userID string, limit int64) ([]models.ExportRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ExportRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
