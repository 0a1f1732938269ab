package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hometrack/internal/models"
)

// MongoPropertyRepository is a MongoDB implementation of PropertyRepository.
type MongoPropertyRepository struct {
	collection *mongo.Collection
}

// NewMongoPropertyRepository creates a new instance of
// MongoPropertyRepository.
func NewMongoPropertyRepository(db *mongo.Database) *MongoPropertyRepository {
	return &MongoPropertyRepository{
		collection: db.Collection("properties"),
	}
}

// Create inserts a new property document.
func (r *MongoPropertyRepository) Create(ctx context.Context, property *models.RealEstateProperty) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	if _, err := r.collection.InsertOne(ctx, property); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// GetByUserID returns all properties owned by the given user.
func (r *MongoPropertyRepository) GetByUserID(ctx context.Context, userID string) ([]models.RealEstateProperty, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query properties for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	properties := make([]models.RealEstateProperty, 0)
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties for user %s: %w", userID, err)
	}
	return properties, nil
}
