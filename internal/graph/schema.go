package graph

import (
	"github.com/graphql-go/graphql"

	"hometrack/internal/models"
	"hometrack/internal/services"
)

// Resolver bundles the services the schema dispatches to.
type Resolver struct {
	Auth     *services.AuthService
	Mortgage *services.MortgageService
	Property *services.PropertyService
}

// NewResolver creates a new Resolver.
func NewResolver(auth *services.AuthService, mortgage *services.MortgageService, property *services.PropertyService) *Resolver {
	return &Resolver{
		Auth:     auth,
		Mortgage: mortgage,
		Property: property,
	}
}

// NewSchema builds the executable schema, mapping each named operation to
// its resolver. The schema performs argument coercion and field
// serialization only; all logic lives in the services.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	mortgageCalculationType := newMortgageCalculationType()
	realEstatePropertyType := newRealEstatePropertyType()

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"calculateMortgage": &graphql.Field{
				Type: mortgageCalculationType,
				Args: graphql.FieldConfigArgument{
					"loanAmount":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"interestRate":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"term":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"propertyValue": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Mortgage.Calculate(
						p.Context,
						p.Args["loanAmount"].(float64),
						p.Args["interestRate"].(float64),
						p.Args["term"].(int),
						p.Args["propertyValue"].(float64),
					)
				},
			},
			"getUserProperties": &graphql.Field{
				Type: graphql.NewList(realEstatePropertyType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Property.GetUserProperties(p.Context, p.Args["userId"].(string))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUp": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Auth.SignUp(p.Context, p.Args["username"].(string), p.Args["password"].(string))
				},
			},
			"logIn": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Auth.LogIn(p.Context, p.Args["username"].(string), p.Args["password"].(string))
				},
			},
			"saveMortgageCalculation": &graphql.Field{
				Type: mortgageCalculationType,
				Args: graphql.FieldConfigArgument{
					"userId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"loanAmount":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"interestRate":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"term":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"propertyValue": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Mortgage.Save(
						p.Context,
						p.Args["userId"].(string),
						p.Args["loanAmount"].(float64),
						p.Args["interestRate"].(float64),
						p.Args["term"].(int),
						p.Args["propertyValue"].(float64),
					)
				},
			},
			"addRealEstateProperty": &graphql.Field{
				Type: realEstatePropertyType,
				Args: graphql.FieldConfigArgument{
					"userId":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"propertyAddress":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"purchasePrice":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"purchaseDate":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"originalLoanAmount": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"currentLoanAmount":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"interestRate":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"homeType":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					property := &models.RealEstateProperty{
						PropertyAddress:    p.Args["propertyAddress"].(string),
						PurchasePrice:      p.Args["purchasePrice"].(float64),
						PurchaseDate:       p.Args["purchaseDate"].(string),
						OriginalLoanAmount: p.Args["originalLoanAmount"].(float64),
						CurrentLoanAmount:  p.Args["currentLoanAmount"].(float64),
						InterestRate:       p.Args["interestRate"].(float64),
						HomeType:           p.Args["homeType"].(string),
						UserID:             p.Args["userId"].(string),
					}
					return r.Property.Add(p.Context, property)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// newMortgageCalculationType builds the response type shared by
// calculateMortgage and saveMortgageCalculation. A persisted record has no
// monthly payment, so that field resolves to null unless the source is a
// calculation result.
func newMortgageCalculationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "MortgageCalculation",
		Fields: graphql.Fields{
			"monthlyPayment": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if result, ok := p.Source.(*services.MortgageResult); ok && result.MonthlyPayment != nil {
						return *result.MonthlyPayment, nil
					}
					return nil, nil
				},
			},
			"propertyValue": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					switch src := p.Source.(type) {
					case *services.MortgageResult:
						return src.PropertyValue, nil
					case *models.MortgageCalculation:
						return src.PropertyValue, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func newRealEstatePropertyType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RealEstateProperty",
		Fields: graphql.Fields{
			"propertyAddress": &graphql.Field{
				Type:    graphql.String,
				Resolve: propertyField(func(p *models.RealEstateProperty) interface{} { return p.PropertyAddress }),
			},
			"purchasePrice": &graphql.Field{
				Type:    graphql.Float,
				Resolve: propertyField(func(p *models.RealEstateProperty) interface{} { return p.PurchasePrice }),
			},
			"purchaseDate": &graphql.Field{
				Type:    graphql.String,
				Resolve: propertyField(func(p *models.RealEstateProperty) interface{} { return p.PurchaseDate }),
			},
			"originalLoanAmount": &graphql.Field{
				Type:    graphql.Float,
				Resolve: propertyField(func(p *models.RealEstateProperty) interface{} { return p.OriginalLoanAmount }),
			},
			"currentLoanAmount": &graphql.Field{
				Type:    graphql.Float,
				Resolve: propertyField(func(p *models.RealEstateProperty) interface{} { return p.CurrentLoanAmount }),
			},
			"interestRate": &graphql.Field{
				Type:    graphql.Float,
				Resolve: propertyField(func(p *models.RealEstateProperty) interface{} { return p.InterestRate }),
			},
			"homeType": &graphql.Field{
				Type:    graphql.String,
				Resolve: propertyField(func(p *models.RealEstateProperty) interface{} { return p.HomeType }),
			},
		},
	})
}

// propertyField adapts a field accessor to a resolver. getUserProperties
// yields values and addRealEstateProperty yields a pointer, so both shapes
// are handled.
func propertyField(get func(*models.RealEstateProperty) interface{}) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		switch src := p.Source.(type) {
		case *models.RealEstateProperty:
			return get(src), nil
		case models.RealEstateProperty:
			return get(&src), nil
		}
		return nil, nil
	}
}
