package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"hometrack/internal/models"
)

// MongoCalculationRepository is a MongoDB implementation of
// CalculationRepository.
type MongoCalculationRepository struct {
	collection *mongo.Collection
}

// NewMongoCalculationRepository creates a new instance of
// MongoCalculationRepository.
func NewMongoCalculationRepository(db *mongo.Database) *MongoCalculationRepository {
	return &MongoCalculationRepository{
		collection: db.Collection("mortgage_calculations"),
	}
}

// Create inserts a new calculation record. The timestamp is defaulted at
// write time when the caller left it zero.
func (r *MongoCalculationRepository) Create(ctx context.Context, calculation *models.MortgageCalculation) error {
	if calculation.ID == "" {
		calculation.ID = uuid.New().String()
	}
	if calculation.Timestamp.IsZero() {
		calculation.Timestamp = time.Now()
	}
	if _, err := r.collection.InsertOne(ctx, calculation); err != nil {
		return fmt.Errorf("failed to create mortgage calculation: %w", err)
	}
	return nil
}
