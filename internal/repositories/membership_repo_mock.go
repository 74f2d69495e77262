package repositories

import (
	"sort"
	"time"

	"gymhub/internal/models"

	"github.com/google/uuid"
)

// MockMembershipRepository is an in-memory implementation of MembershipRepository.
type MockMembershipRepository struct {
	db *MemoryDB
}

// NewMockMembershipRepository creates a new instance of MockMembershipRepository.
func NewMockMembershipRepository(db *MemoryDB) *MockMembershipRepository {
	return &MockMembershipRepository{db: db}
}

// Create adds a new membership. Duplicate (user, gym) pairs are rejected the
// way the database unique index would reject them.
func (r *MockMembershipRepository) Create(membership *models.Membership) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, m := range r.db.memberships {
		if m.UserID == membership.UserID && m.GymID == membership.GymID {
			return models.NewMembershipAlreadyExists(membership.UserID, membership.GymID)
		}
	}

	if membership.ID == "" {
		membership.ID = uuid.New().String()
	}
	membership.CreatedAt = time.Now()
	membership.UpdatedAt = time.Now()
	r.db.memberships[membership.ID] = *membership
	return nil
}

// GetByUserAndGym returns the membership for the exact pair, or (nil, nil)
// when none exists.
func (r *MockMembershipRepository) GetByUserAndGym(userID, gymID string) (*models.Membership, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, m := range r.db.memberships {
		if m.UserID == userID && m.GymID == gymID {
			membership := m
			return &membership, nil
		}
	}
	return nil, nil
}

// GetByGymID lists a gym's memberships with their users, most recent first.
func (r *MockMembershipRepository) GetByGymID(gymID string) ([]models.MembershipWithUser, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var result []models.MembershipWithUser
	for _, m := range r.db.memberships {
		if m.GymID != gymID {
			continue
		}
		user, ok := r.db.users[m.UserID]
		if !ok {
			return nil, models.NewEntityNotFound("User", m.UserID)
		}
		result = append(result, models.MembershipWithUser{Membership: m, User: user})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Membership.JoinDate.After(result[j].Membership.JoinDate)
	})
	return result, nil
}

// GetByUserID lists a user's memberships with their gyms.
func (r *MockMembershipRepository) GetByUserID(userID string) ([]models.MembershipWithGym, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var result []models.MembershipWithGym
	for _, m := range r.db.memberships {
		if m.UserID != userID {
			continue
		}
		gym, ok := r.db.gyms[m.GymID]
		if !ok {
			return nil, models.NewEntityNotFound("Gym", m.GymID)
		}
		result = append(result, models.MembershipWithGym{Membership: m, Gym: gym})
	}
	return result, nil
}

// CountByGymID counts current memberships for a gym.
func (r *MockMembershipRepository) CountByGymID(gymID string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	count := 0
	for _, m := range r.db.memberships {
		if m.GymID == gymID {
			count++
		}
	}
	return count, nil
}

// Delete removes a membership by its own identifier.
func (r *MockMembershipRepository) Delete(membershipID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.memberships[membershipID]; !ok {
		return models.NewEntityNotFound("Membership", membershipID)
	}
	delete(r.db.memberships, membershipID)
	return nil
}
