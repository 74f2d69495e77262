package services

import (
	"gymhub/internal/models"
	"gymhub/internal/repositories"
)

// GymService handles business logic related to gyms.
type GymService struct {
	repo     repositories.GymRepository
	userRepo repositories.UserRepository
}

// NewGymService creates a new GymService.
func NewGymService(repo repositories.GymRepository, userRepo repositories.UserRepository) *GymService {
	return &GymService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// GetAllGyms retrieves all gyms.
func (s *GymService) GetAllGyms() ([]models.Gym, error) {
	return s.repo.GetAll()
}

// GetGymByID retrieves a single gym by its ID.
func (s *GymService) GetGymByID(id string) (*models.Gym, error) {
	return s.repo.GetByID(id)
}

// GetGymsByManagerID retrieves the gyms owned by a manager.
func (s *GymService) GetGymsByManagerID(managerID string) ([]models.Gym, error) {
	if managerID == "" {
		return nil, models.NewRequiredField("manager ID", "listing gyms by manager")
	}
	return s.repo.GetByManagerID(managerID)
}

// CreateGym creates a new gym after verifying the owning manager exists.
func (s *GymService) CreateGym(gym *models.Gym) error {
	if _, err := s.userRepo.GetByID(gym.ManagerID); err != nil {
		return err
	}
	return s.repo.Create(gym)
}

// UpdateGym applies a partial update. Location and capacity honor the
// three-way patch semantics: absent leaves the value, explicit null clears
// it. A capacity lowered below the current member count is accepted; the
// limit only gates new admissions.
func (s *GymService) UpdateGym(id string, in models.UpdateGymInput) (*models.Gym, error) {
	gym, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.ManagerID != nil {
		if _, err := s.userRepo.GetByID(*in.ManagerID); err != nil {
			return nil, err
		}
		gym.ManagerID = *in.ManagerID
	}

	gym.ApplyUpdate(in)
	if err := s.repo.Update(gym); err != nil {
		return nil, err
	}
	return gym, nil
}

// DeleteGym deletes a gym by its ID.
func (s *GymService) DeleteGym(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// ListWithAvailableSpots returns gyms with room left, ranked by open spots.
func (s *GymService) ListWithAvailableSpots() ([]models.GymAvailability, error) {
	return s.repo.ListWithAvailableSpots()
}
