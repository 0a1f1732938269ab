package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hometrack/internal/models"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of MongoUserRepository.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		collection: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique index on username. Username uniqueness
// is enforced by the store, not by application code.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

// Create inserts a new user document.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.MortgageCalculations == nil {
		user.MortgageCalculations = []string{}
	}
	if user.RealEstateProperties == nil {
		user.RealEstateProperties = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by exact username match.
func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user with username %s not found", username)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// PushCalculation appends a calculation ID to the user's calculation list.
// An update matching zero documents is not an error.
func (r *MongoUserRepository) PushCalculation(ctx context.Context, userID, calculationID string) error {
	_, err := r.collection.UpdateByID(ctx, userID, bson.M{
		"$push": bson.M{"mortgageCalculations": calculationID},
	})
	if err != nil {
		return fmt.Errorf("failed to link calculation %s to user %s: %w", calculationID, userID, err)
	}
	return nil
}

// PushProperty appends a property ID to the user's property list. An update
// matching zero documents is not an error.
func (r *MongoUserRepository) PushProperty(ctx context.Context, userID, propertyID string) error {
	_, err := r.collection.UpdateByID(ctx, userID, bson.M{
		"$push": bson.M{"realEstateProperties": propertyID},
	})
	if err != nil {
		return fmt.Errorf("failed to link property %s to user %s: %w", propertyID, userID, err)
	}
	return nil
}
