package services

import (
	"gymhub/internal/models"
	"gymhub/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a new user after checking the email is not taken.
func (s *UserService) CreateUser(user *models.User) error {
	existing, err := s.repo.GetByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewDuplicateEntity("User", "email", user.Email)
	}

	if user.Role == "" {
		user.Role = models.RoleMember
	}
	return s.repo.Create(user)
}

// UpdateUser applies a partial profile update. Only provided fields change;
// email and role stay as created.
func (s *UserService) UpdateUser(id string, in models.UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.ApplyUpdate(in)
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
