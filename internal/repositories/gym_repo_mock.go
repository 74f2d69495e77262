package repositories

import (
	"gymhub/internal/models"

	"github.com/google/uuid"
)

// MockGymRepository is an in-memory implementation of GymRepository.
type MockGymRepository struct {
	db *MemoryDB
}

// NewMockGymRepository creates a new instance of MockGymRepository.
func NewMockGymRepository(db *MemoryDB) *MockGymRepository {
	return &MockGymRepository{db: db}
}

// Create adds a new gym.
func (r *MockGymRepository) Create(gym *models.Gym) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if gym.ID == "" {
		gym.ID = uuid.New().String()
	}
	r.db.gyms[gym.ID] = *gym
	return nil
}

// GetByID returns a gym by its ID.
func (r *MockGymRepository) GetByID(id string) (*models.Gym, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	gym, ok := r.db.gyms[id]
	if !ok {
		return nil, models.NewEntityNotFound("Gym", id)
	}
	return &gym, nil
}

// GetAll returns all gyms.
func (r *MockGymRepository) GetAll() ([]models.Gym, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	gymList := make([]models.Gym, 0, len(r.db.gyms))
	for _, gym := range r.db.gyms {
		gymList = append(gymList, gym)
	}
	return gymList, nil
}

// GetByManagerID returns all gyms owned by the given manager.
func (r *MockGymRepository) GetByManagerID(managerID string) ([]models.Gym, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var gyms []models.Gym
	for _, gym := range r.db.gyms {
		if gym.ManagerID == managerID {
			gyms = append(gyms, gym)
		}
	}
	return gyms, nil
}

// Update modifies an existing gym.
func (r *MockGymRepository) Update(gym *models.Gym) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.gyms[gym.ID]; !ok {
		return models.NewEntityNotFound("Gym", gym.ID)
	}
	r.db.gyms[gym.ID] = *gym
	return nil
}

// Delete removes a gym by its ID.
func (r *MockGymRepository) Delete(id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.gyms[id]; !ok {
		return models.NewEntityNotFound("Gym", id)
	}
	delete(r.db.gyms, id)
	return nil
}

// GetMemberCount counts current memberships for a gym.
func (r *MockGymRepository) GetMemberCount(gymID string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.countMembersLocked(gymID), nil
}

// ListWithAvailableSpots computes live availability for every gym, drops the
// full ones, and ranks the rest: most open spots first, unlimited gyms last.
func (r *MockGymRepository) ListWithAvailableSpots() ([]models.GymAvailability, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	result := make([]models.GymAvailability, 0, len(r.db.gyms))
	for _, gym := range r.db.gyms {
		count := r.countMembersLocked(gym.ID)
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

// countMembersLocked assumes the caller holds the store lock.
func (r *MockGymRepository) countMembersLocked(gymID string) int {
	count := 0
	for _, m := range r.db.memberships {
		if m.GymID == gymID {
			count++
		}
	}
	return count
}
