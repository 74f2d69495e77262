package repositories

import (
	"gymhub/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	db *MemoryDB
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository(db *MemoryDB) *MockUserRepository {
	return &MockUserRepository{db: db}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.db.users[user.ID] = *user
	return nil
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	user, ok := r.db.users[id]
	if !ok {
		return nil, models.NewEntityNotFound("User", id)
	}
	return &user, nil
}

// GetByEmail returns a user by email, or (nil, nil) when absent.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, user := range r.db.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	userList := make([]models.User, 0, len(r.db.users))
	for _, user := range r.db.users {
		userList = append(userList, user)
	}
	return userList, nil
}

// Update modifies an existing user.
func (r *MockUserRepository) Update(user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[user.ID]; !ok {
		return models.NewEntityNotFound("User", user.ID)
	}
	r.db.users[user.ID] = *user
	return nil
}

// Delete removes a user by their ID.
func (r *MockUserRepository) Delete(id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[id]; !ok {
		return models.NewEntityNotFound("User", id)
	}
	delete(r.db.users, id)
	return nil
}
