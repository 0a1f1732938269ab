package repositories

import (
	"context"

	"hometrack/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// PushCalculation appends a calculation ID to the user's calculation
	// list. Unknown user IDs are a silent no-op.
	PushCalculation(ctx context.Context, userID, calculationID string) error
	// PushProperty appends a property ID to the user's property list.
	// Unknown user IDs are a silent no-op.
	PushProperty(ctx context.Context, userID, propertyID string) error
}
