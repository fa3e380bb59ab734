package audit

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ contracts.AuditRepository = (*AuditMongoRepository)(nil)

type AuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Client, dbName string) *AuditMongoRepository {
	return &AuditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReviewAudits),
	}
}

func (repo *AuditMongoRepository) Insert(ctx context.Context, entry models.AuditEntry) error {
	_, err := repo.Collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindByDiagnosisID returns the trail of one diagnosis, oldest first.
func (repo *AuditMongoRepository) FindByDiagnosisID(ctx context.Context, diagnosisID string) ([]models.AuditEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"diagnosis_id": diagnosisID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := []models.AuditEntry{}
	for cursor.Next(ctx) {
		var entry models.AuditEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
		entries = append(entries, entry)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	return entries, nil
}
