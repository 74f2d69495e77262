package repositories

import "gymhub/internal/models"

// GymRepository defines the interface for gym data access.
type GymRepository interface {
	Create(gym *models.Gym) error
	GetByID(id string) (*models.Gym, error)
	GetAll() ([]models.Gym, error)
	GetByManagerID(managerID string) ([]models.Gym, error)
	Update(gym *models.Gym) error
	Delete(id string) error
	GetMemberCount(gymID string) (int, error)
	// ListWithAvailableSpots returns every gym with room left, paired with
	// its live member count. Gyms whose finite capacity is used up are
	// filtered out; unlimited gyms are always retained. Sorted by available
	// spots descending, unlimited gyms last.
	ListWithAvailableSpots() ([]models.GymAvailability, error)
}
