package services

import (
	"context"
	"errors"
	"log"

	"hometrack/internal/models"
	"hometrack/internal/repositories"
)

// ErrFetchingProperties is the generic error returned when the property
// query fails; the underlying cause is logged server-side only.
var ErrFetchingProperties = errors.New("error fetching user properties")

// PropertyService handles real-estate property tracking.
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(propertyRepo repositories.PropertyRepository, userRepo repositories.UserRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Add persists a property owned by userID and appends its ID to the user's
// property list. The owner reference is not validated; an unresolvable
// userID leaves the link step a silent no-op.
func (s *PropertyService) Add(ctx context.Context, property *models.RealEstateProperty) (*models.RealEstateProperty, error) {
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	if err := s.userRepo.PushProperty(ctx, property.UserID, property.ID); err != nil {
		return nil, err
	}

	return property, nil
}

// GetUserProperties returns all properties owned by userID, possibly empty.
// A store failure is logged and translated to a generic error.
func (s *PropertyService) GetUserProperties(ctx context.Context, userID string) ([]models.RealEstateProperty, error) {
	properties, err := s.propertyRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching properties for user %s: %v", userID, err)
		return nil, ErrFetchingProperties
	}
	return properties, nil
}
