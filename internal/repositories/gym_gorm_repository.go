package repositories

import (
	"errors"
	"fmt"
	"sort"

	"gymhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMGymRepository is a GORM implementation of GymRepository.
type GORMGymRepository struct {
	db *gorm.DB
}

// NewGORMGymRepository creates a new instance of GORMGymRepository.
func NewGORMGymRepository(db *gorm.DB) *GORMGymRepository {
	return &GORMGymRepository{
		db: db,
	}
}

// Create creates a new gym in the database.
func (r *GORMGymRepository) Create(gym *models.Gym) error {
	if gym.ID == "" {
		gym.ID = uuid.New().String()
	}
	if err := r.db.Create(gym).Error; err != nil {
		return fmt.Errorf("failed to create gym: %w", err)
	}
	return nil
}

// GetByID retrieves a single gym by its ID from the database.
func (r *GORMGymRepository) GetByID(id string) (*models.Gym, error) {
	var gym models.Gym
	if err := r.db.First(&gym, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewEntityNotFound("Gym", id)
		}
		return nil, fmt.Errorf("failed to get gym by ID %s: %w", id, err)
	}
	return &gym, nil
}

// GetAll retrieves all gyms from the database.
func (r *GORMGymRepository) GetAll() ([]models.Gym, error) {
	var gyms []models.Gym
	if err := r.db.Find(&gyms).Error; err != nil {
		return nil, fmt.Errorf("failed to get all gyms: %w", err)
	}
	return gyms, nil
}

// GetByManagerID retrieves all gyms owned by the given manager.
func (r *GORMGymRepository) GetByManagerID(managerID string) ([]models.Gym, error) {
	var gyms []models.Gym
	if err := r.db.Find(&gyms, "manager_id = ?", managerID).Error; err != nil {
		return nil, fmt.Errorf("failed to get gyms for manager %s: %w", managerID, err)
	}
	return gyms, nil
}

// Update updates an existing gym in the database.
func (r *GORMGymRepository) Update(gym *models.Gym) error {
	// Save skips nil pointer columns, so cleared Location/Capacity values
	// must be written explicitly.
	res := r.db.Model(gym).Select("Name", "Type", "Location", "Capacity", "ManagerID").Updates(gym)
	if res.Error != nil {
		return fmt.Errorf("failed to update gym: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewEntityNotFound("Gym", gym.ID)
	}
	return nil
}

// Delete deletes a gym by its ID from the database.
func (r *GORMGymRepository) Delete(id string) error {
	res := r.db.Delete(&models.Gym{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete gym: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewEntityNotFound("Gym", id)
	}
	return nil
}

// GetMemberCount counts current memberships for a gym.
func (r *GORMGymRepository) GetMemberCount(gymID string) (int, error) {
	var count int64
	if err := r.db.Model(&models.Membership{}).Where("gym_id = ?", gymID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count members for gym %s: %w", gymID, err)
	}
	return int(count), nil
}

// ListWithAvailableSpots computes live availability for every gym, drops the
// full ones, and ranks the rest: most open spots first, unlimited gyms last.
func (r *GORMGymRepository) ListWithAvailableSpots() ([]models.GymAvailability, error) {
	gyms, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	result := make([]models.GymAvailability, 0, len(gyms))
	for _, gym := range gyms {
		count, err := r.GetMemberCount(gym.ID)
		if err != nil {
			return nil, err
		}
		spots := gym.AvailableSpots(count)
		if spots != nil && *spots == 0 {
			continue
		}
		result = append(result, models.GymAvailability{
			Gym:            gym,
			AvailableSpots: spots,
			CurrentCount:   count,
		})
	}

	sortAvailability(result)
	return result, nil
}

// sortAvailability orders entries by available spots descending. Unlimited
// gyms are not ranked as infinite; they always sort after finite ones.
func sortAvailability(entries []models.GymAvailability) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].AvailableSpots, entries[j].AvailableSpots
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
}
