package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"hometrack/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user. Duplicate usernames are rejected, mirroring the
// store's unique index.
func (r *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("failed to create user: username %s already exists", user.Username)
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.MortgageCalculations == nil {
		user.MortgageCalculations = []string{}
	}
	if user.RealEstateProperties == nil {
		user.RealEstateProperties = []string{}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByUsername returns a user by exact username match.
func (r *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with username %s not found", username)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return &user, nil
}

// PushCalculation appends a calculation ID to the user's calculation list.
// Unknown user IDs are a silent no-op.
func (r *MockUserRepository) PushCalculation(ctx context.Context, userID, calculationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil
	}
	user.MortgageCalculations = append(user.MortgageCalculations, calculationID)
	r.users[userID] = user
	return nil
}

// PushProperty appends a property ID to the user's property list. Unknown
// user IDs are a silent no-op.
func (r *MockUserRepository) PushProperty(ctx context.Context, userID, propertyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil
	}
	user.RealEstateProperties = append(user.RealEstateProperties, propertyID)
	r.users[userID] = user
	return nil
}
