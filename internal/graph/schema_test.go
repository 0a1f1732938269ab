package graph_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"

	"hometrack/internal/graph"
	"hometrack/internal/repositories"
	"hometrack/internal/services"
)

const testJWTSecret = "test_jwt_secret"

// testBackend wires a schema to in-memory repositories.
type testBackend struct {
	schema   graphql.Schema
	auth     *services.AuthService
	userRepo *repositories.MockUserRepository
	calcRepo *repositories.MockCalculationRepository
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	calculationRepo := repositories.NewMockCalculationRepository()
	propertyRepo := repositories.NewMockPropertyRepository()

	authService := services.NewAuthService(userRepo, testJWTSecret)
	mortgageService := services.NewMortgageService(calculationRepo, userRepo)
	propertyService := services.NewPropertyService(propertyRepo, userRepo)

	schema, err := graph.NewSchema(graph.NewResolver(authService, mortgageService, propertyService))
	assert.NoError(t, err)

	return &testBackend{
		schema:   schema,
		auth:     authService,
		userRepo: userRepo,
		calcRepo: calculationRepo,
	}
}

// execute runs a query string against the schema.
func (b *testBackend) execute(query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        b.schema,
		RequestString: query,
		Context:       context.Background(),
	})
}

// signUpUser runs the signUp mutation and returns the new user's ID and
// token.
func (b *testBackend) signUpUser(t *testing.T, username, password string) (string, string) {
	t.Helper()
	result := b.execute(fmt.Sprintf(`mutation { signUp(username: %q, password: %q) }`, username, password))
	assert.Empty(t, result.Errors)
	token, ok := result.Data.(map[string]interface{})["signUp"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	claims, err := b.auth.ParseToken(token)
	assert.NoError(t, err)
	userID, ok := claims["user_id"].(string)
	assert.True(t, ok)
	return userID, token
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestCalculateMortgageQuery(t *testing.T) {
	backend := newTestBackend(t)

	result := backend.execute(`{
		calculateMortgage(loanAmount: 300000, interestRate: 6, term: 30, propertyValue: 350000) {
			monthlyPayment
			propertyValue
		}
	}`)
	assert.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})["calculateMortgage"].(map[string]interface{})
	assert.InDelta(t, 1798.65, data["monthlyPayment"].(float64), 0.01)
	assert.Equal(t, 350000.0, data["propertyValue"])

	// The calculation inputs were persisted as a side effect.
	assert.Len(t, backend.calcRepo.GetAll(), 1)
}

func TestCalculateMortgageQuery_NonFinite(t *testing.T) {
	backend := newTestBackend(t)

	result := backend.execute(`{
		calculateMortgage(loanAmount: 300000, interestRate: 6, term: 0, propertyValue: 350000) {
			monthlyPayment
			propertyValue
		}
	}`)
	assert.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})["calculateMortgage"].(map[string]interface{})
	assert.Nil(t, data["monthlyPayment"])

	// Persistence is not conditioned on a finite result.
	assert.Len(t, backend.calcRepo.GetAll(), 1)
}

func TestSignUpAndLogIn(t *testing.T) {
	backend := newTestBackend(t)

	userID, _ := backend.signUpUser(t, "alice", "secret")
	assert.NotEmpty(t, userID)

	// logIn with the same credentials returns a token for the same user.
	result := backend.execute(`mutation { logIn(username: "alice", password: "secret") }`)
	assert.Empty(t, result.Errors)
	token := result.Data.(map[string]interface{})["logIn"].(string)
	claims, err := backend.auth.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims["user_id"])

	// The stored password is a digest, not the plaintext.
	user, err := backend.userRepo.GetByUsername(context.Background(), "alice")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)
}

func TestLogIn_InvalidCredentials(t *testing.T) {
	backend := newTestBackend(t)
	backend.signUpUser(t, "alice", "secret")

	// Wrong password and unknown username produce the identical message.
	wrongPassword := backend.execute(`mutation { logIn(username: "alice", password: "wrong") }`)
	assert.Len(t, wrongPassword.Errors, 1)
	assert.Equal(t, "invalid credentials", wrongPassword.Errors[0].Message)

	unknownUser := backend.execute(`mutation { logIn(username: "nobody", password: "secret") }`)
	assert.Len(t, unknownUser.Errors, 1)
	assert.Equal(t, wrongPassword.Errors[0].Message, unknownUser.Errors[0].Message)
}

func TestSaveMortgageCalculationMutation(t *testing.T) {
	backend := newTestBackend(t)
	userID, _ := backend.signUpUser(t, "bob", "hunter2")

	result := backend.execute(fmt.Sprintf(`mutation {
		saveMortgageCalculation(userId: %q, loanAmount: 250000, interestRate: 4.5, term: 15, propertyValue: 300000) {
			monthlyPayment
			propertyValue
		}
	}`, userID))
	assert.Empty(t, result.Errors)

	// The shared response type never carries a payment for a persisted
	// record; propertyValue comes from the record.
	data := result.Data.(map[string]interface{})["saveMortgageCalculation"].(map[string]interface{})
	assert.Nil(t, data["monthlyPayment"])
	assert.Equal(t, 300000.0, data["propertyValue"])

	// The record holds the four inputs verbatim and is linked to the user.
	records := backend.calcRepo.GetAll()
	assert.Len(t, records, 1)
	assert.Equal(t, 250000.0, records[0].LoanAmount)
	assert.Equal(t, 4.5, records[0].InterestRate)
	assert.Equal(t, 15, records[0].Term)
	assert.Equal(t, 300000.0, records[0].PropertyValue)

	user, err := backend.userRepo.GetByID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, []string{records[0].ID}, user.MortgageCalculations)
}

func TestAddRealEstatePropertyAndGetUserProperties(t *testing.T) {
	backend := newTestBackend(t)
	ownerID, _ := backend.signUpUser(t, "carol", "pw")
	otherID, _ := backend.signUpUser(t, "dave", "pw")

	result := backend.execute(fmt.Sprintf(`mutation {
		addRealEstateProperty(
			userId: %q,
			propertyAddress: "1 Main St",
			purchasePrice: 420000,
			purchaseDate: "2021-06-01",
			originalLoanAmount: 380000,
			currentLoanAmount: 350000,
			interestRate: 3.25,
			homeType: "single family"
		) {
			propertyAddress
			purchasePrice
			purchaseDate
			originalLoanAmount
			currentLoanAmount
			interestRate
			homeType
		}
	}`, ownerID))
	assert.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})["addRealEstateProperty"].(map[string]interface{})
	assert.Equal(t, "1 Main St", data["propertyAddress"])
	assert.Equal(t, 420000.0, data["purchasePrice"])
	assert.Equal(t, "2021-06-01", data["purchaseDate"])
	assert.Equal(t, 380000.0, data["originalLoanAmount"])
	assert.Equal(t, 350000.0, data["currentLoanAmount"])
	assert.Equal(t, 3.25, data["interestRate"])
	assert.Equal(t, "single family", data["homeType"])

	// The owner's query includes the new property.
	owned := backend.execute(fmt.Sprintf(`{ getUserProperties(userId: %q) { propertyAddress } }`, ownerID))
	assert.Empty(t, owned.Errors)
	ownedList := owned.Data.(map[string]interface{})["getUserProperties"].([]interface{})
	assert.Len(t, ownedList, 1)
	assert.Equal(t, "1 Main St", ownedList[0].(map[string]interface{})["propertyAddress"])

	// An unrelated user's query does not.
	unrelated := backend.execute(fmt.Sprintf(`{ getUserProperties(userId: %q) { propertyAddress } }`, otherID))
	assert.Empty(t, unrelated.Errors)
	unrelatedList := unrelated.Data.(map[string]interface{})["getUserProperties"].([]interface{})
	assert.Empty(t, unrelatedList)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	backend := newTestBackend(t)
	backend.signUpUser(t, "alice", "secret")

	result := backend.execute(`mutation { signUp(username: "alice", password: "other") }`)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "already exists")
}
