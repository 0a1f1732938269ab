package models

import "time"

// MortgageCalculation records the inputs of a single mortgage calculation.
// A record is written on every calculation, whether or not the result was
// finite, and is immutable once created.
type MortgageCalculation struct {
	ID            string    `json:"id" bson:"_id"`
	LoanAmount    float64   `json:"loan_amount" bson:"loanAmount"`
	InterestRate  float64   `json:"interest_rate" bson:"interestRate"` // percent per annum
	Term          int       `json:"term" bson:"term"`                  // whole years
	PropertyValue float64   `json:"property_value" bson:"propertyValue"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"` // defaulted at write time
}
