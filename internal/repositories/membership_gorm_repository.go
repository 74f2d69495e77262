package repositories

import (
	"errors"
	"fmt"

	"gymhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMembershipRepository is a GORM implementation of MembershipRepository.
type GORMMembershipRepository struct {
	db *gorm.DB
}

// NewGORMMembershipRepository creates a new instance of GORMMembershipRepository.
func NewGORMMembershipRepository(db *gorm.DB) *GORMMembershipRepository {
	return &GORMMembershipRepository{
		db: db,
	}
}

// Create inserts a new membership. The composite unique index on
// (user_id, gym_id) rejects duplicate pairs at the storage level.
func (r *GORMMembershipRepository) Create(membership *models.Membership) error {
	if membership.ID == "" {
		membership.ID = uuid.New().String()
	}
	if err := r.db.Create(membership).Error; err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

// GetByUserAndGym retrieves the membership for the exact pair, or (nil, nil)
// when none exists.
func (r *GORMMembershipRepository) GetByUserAndGym(userID, gymID string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND gym_id = ?", userID, gymID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership for user %s and gym %s: %w", userID, gymID, err)
	}
	return &membership, nil
}

// GetByGymID lists a gym's memberships with their users, most recent first.
func (r *GORMMembershipRepository) GetByGymID(gymID string) ([]models.MembershipWithUser, error) {
	var memberships []models.Membership
	if err := r.db.Order("join_date DESC").Find(&memberships, "gym_id = ?", gymID).Error; err != nil {
		return nil, fmt.Errorf("failed to get memberships for gym %s: %w", gymID, err)
	}

	result := make([]models.MembershipWithUser, 0, len(memberships))
	for _, m := range memberships {
		var user models.User
		if err := r.db.First(&user, "id = ?", m.UserID).Error; err != nil {
			return nil, fmt.Errorf("failed to load user %s for membership %s: %w", m.UserID, m.ID, err)
		}
		result = append(result, models.MembershipWithUser{Membership: m, User: user})
	}
	return result, nil
}

// GetByUserID lists a user's memberships with their gyms.
func (r *GORMMembershipRepository) GetByUserID(userID string) ([]models.MembershipWithGym, error) {
	var memberships []models.Membership
	if err := r.db.Find(&memberships, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get memberships for user %s: %w", userID, err)
	}

	result := make([]models.MembershipWithGym, 0, len(memberships))
	for _, m := range memberships {
		var gym models.Gym
		if err := r.db.First(&gym, "id = ?", m.GymID).Error; err != nil {
			return nil, fmt.Errorf("failed to load gym %s for membership %s: %w", m.GymID, m.ID, err)
		}
		result = append(result, models.MembershipWithGym{Membership: m, Gym: gym})
	}
	return result, nil
}

// CountByGymID counts current memberships for a gym.
func (r *GORMMembershipRepository) CountByGymID(gymID string) (int, error) {
	var count int64
	if err := r.db.Model(&models.Membership{}).Where("gym_id = ?", gymID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count memberships for gym %s: %w", gymID, err)
	}
	return int(count), nil
}

// Delete removes a membership by its own identifier.
func (r *GORMMembershipRepository) Delete(membershipID string) error {
	res := r.db.Delete(&models.Membership{}, "id = ?", membershipID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewEntityNotFound("Membership", membershipID)
	}
	return nil
}
