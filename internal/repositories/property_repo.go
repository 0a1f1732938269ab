package repositories

import (
	"context"

	"hometrack/internal/models"
)

// PropertyRepository defines the interface for real-estate property data
// access.
type PropertyRepository interface {
	Create(ctx context.Context, property *models.RealEstateProperty) error
	// GetByUserID returns all properties whose owner reference equals
	// userID. The result is possibly empty, never nil on success.
	GetByUserID(ctx context.Context, userID string) ([]models.RealEstateProperty, error)
}
