package models

// RealEstateProperty represents a tracked property owned by a user.
type RealEstateProperty struct {
	ID                 string  `json:"id" bson:"_id"`
	PropertyAddress    string  `json:"property_address" bson:"propertyAddress"`
	PurchasePrice      float64 `json:"purchase_price" bson:"purchasePrice"`
	PurchaseDate       string  `json:"purchase_date" bson:"purchaseDate"`
	OriginalLoanAmount float64 `json:"original_loan_amount" bson:"originalLoanAmount"`
	CurrentLoanAmount  float64 `json:"current_loan_amount" bson:"currentLoanAmount"`
	InterestRate       float64 `json:"interest_rate" bson:"interestRate"`
	HomeType           string  `json:"home_type" bson:"homeType"`

	// UserID references the owning user by ID. It is not validated for
	// existence; a dangling reference is tolerated.
	UserID string `json:"user_id" bson:"user"`
}
