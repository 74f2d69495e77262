package repositories

import "gymhub/internal/models"

// UserRepository defines the interface for user data access.
//
// GetByEmail returns (nil, nil) when no user carries the email, since callers
// probe it for duplicates; GetByID and the mutating methods report a missing
// row as a domain not-found error.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}
