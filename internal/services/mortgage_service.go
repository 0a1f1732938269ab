package services

import (
	"context"
	"log"
	"math"

	"hometrack/internal/models"
	"hometrack/internal/repositories"
)

// MortgageResult is the outcome of a monthly-payment calculation.
// MonthlyPayment is nil when the formula did not produce a finite number
// (zero interest rate or zero term).
type MortgageResult struct {
	MonthlyPayment *float64
	PropertyValue  float64
}

// MortgageService computes monthly payments and persists calculation
// records.
type MortgageService struct {
	calculationRepo repositories.CalculationRepository
	userRepo        repositories.UserRepository
}

// NewMortgageService creates a new MortgageService.
func NewMortgageService(calculationRepo repositories.CalculationRepository, userRepo repositories.UserRepository) *MortgageService {
	return &MortgageService{
		calculationRepo: calculationRepo,
		userRepo:        userRepo,
	}
}

// Calculate computes the monthly payment with the standard amortization
// formula and records the inputs. The record is written whether or not the
// result was finite; persistence failure propagates to the caller.
func (s *MortgageService) Calculate(ctx context.Context, loanAmount, interestRate float64, term int, propertyValue float64) (*MortgageResult, error) {
	log.Println("Calculating ...")

	monthlyRate := interestRate / 100 / 12
	payments := float64(term * 12)
	growth := math.Pow(1+monthlyRate, payments)
	monthlyPayment := loanAmount * growth * monthlyRate / (growth - 1)

	record := &models.MortgageCalculation{
		LoanAmount:    loanAmount,
		InterestRate:  interestRate,
		Term:          term,
		PropertyValue: propertyValue,
	}
	if err := s.calculationRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	result := &MortgageResult{PropertyValue: propertyValue}
	if !math.IsNaN(monthlyPayment) && !math.IsInf(monthlyPayment, 0) {
		result.MonthlyPayment = &monthlyPayment
	}
	return result, nil
}

// Save persists a calculation record with the four inputs verbatim and
// appends its ID to the user's calculation list. No monthly payment is
// computed. An unresolvable userID leaves the link step a silent no-op.
func (s *MortgageService) Save(ctx context.Context, userID string, loanAmount, interestRate float64, term int, propertyValue float64) (*models.MortgageCalculation, error) {
	record := &models.MortgageCalculation{
		LoanAmount:    loanAmount,
		InterestRate:  interestRate,
		Term:          term,
		PropertyValue: propertyValue,
	}
	if err := s.calculationRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.userRepo.PushCalculation(ctx, userID, record.ID); err != nil {
		return nil, err
	}

	return record, nil
}
