package repositories

import (
	"context"

	"hometrack/internal/models"
)

// CalculationRepository defines the interface for mortgage-calculation
// record access. Records are write-once: there is no update or delete.
type CalculationRepository interface {
	Create(ctx context.Context, calculation *models.MortgageCalculation) error
}
