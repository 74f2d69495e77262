package repositories

import "gymhub/internal/models"

// MembershipRepository defines the interface for membership data access.
//
// GetByUserAndGym returns (nil, nil) when no membership links the pair; the
// admission flow treats absence as the success path.
type MembershipRepository interface {
	Create(membership *models.Membership) error
	GetByUserAndGym(userID, gymID string) (*models.Membership, error)
	// GetByGymID lists a gym's memberships joined with their users, most
	// recent join date first.
	GetByGymID(gymID string) ([]models.MembershipWithUser, error)
	GetByUserID(userID string) ([]models.MembershipWithGym, error)
	CountByGymID(gymID string) (int, error)
	Delete(membershipID string) error
}
