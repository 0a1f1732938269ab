package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"hometrack/internal/models"
)

// MockCalculationRepository is an in-memory implementation of
// CalculationRepository.
type MockCalculationRepository struct {
	calculations map[string]models.MortgageCalculation
	mu           sync.RWMutex
}

// NewMockCalculationRepository creates a new instance of
// MockCalculationRepository.
func NewMockCalculationRepository() *MockCalculationRepository {
	return &MockCalculationRepository{
		calculations: make(map[string]models.MortgageCalculation),
	}
}

// Create adds a new calculation record, defaulting the timestamp at write
// time.
func (r *MockCalculationRepository) Create(ctx context.Context, calculation *models.MortgageCalculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if calculation.ID == "" {
		calculation.ID = uuid.New().String()
	}
	if calculation.Timestamp.IsZero() {
		calculation.Timestamp = time.Now()
	}
	r.calculations[calculation.ID] = *calculation
	return nil
}

// GetAll returns every stored calculation. Used by tests to assert the
// write-through side effect.
func (r *MockCalculationRepository) GetAll() []models.MortgageCalculation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.MortgageCalculation, 0, len(r.calculations))
	for _, c := range r.calculations {
		list = append(list, c)
	}
	return list
}
