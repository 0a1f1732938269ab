package models

// User represents a registered account.
type User struct {
	ID       string `json:"id" bson:"_id"`
	Username string `json:"username" bson:"username"`
	Password string `bson:"password"` // bcrypt digest, no json tag for security

	// Weak back-references: lists of record IDs appended when a
	// calculation or property is created for this user. No cascade,
	// no referential-integrity enforcement.
	MortgageCalculations []string `json:"mortgage_calculations" bson:"mortgageCalculations"`
	RealEstateProperties []string `json:"real_estate_properties" bson:"realEstateProperties"`
}
