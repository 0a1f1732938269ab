package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"hometrack/internal/models"
)

// MockPropertyRepository is an in-memory implementation of
// PropertyRepository.
type MockPropertyRepository struct {
	properties map[string]models.RealEstateProperty
	mu         sync.RWMutex
}

// NewMockPropertyRepository creates a new instance of
// MockPropertyRepository.
func NewMockPropertyRepository() *MockPropertyRepository {
	return &MockPropertyRepository{
		properties: make(map[string]models.RealEstateProperty),
	}
}

// Create adds a new property.
func (r *MockPropertyRepository) Create(ctx context.Context, property *models.RealEstateProperty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	r.properties[property.ID] = *property
	return nil
}

// GetByUserID returns all properties owned by the given user.
func (r *MockPropertyRepository) GetByUserID(ctx context.Context, userID string) ([]models.RealEstateProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.RealEstateProperty, 0)
	for _, p := range r.properties {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	return list, nil
}
